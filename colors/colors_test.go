// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}, false},
		{"00ff00", color.RGBA{0, 255, 0, 255}, false},
		{"#fff", color.RGBA{255, 255, 255, 255}, false},
		{"#0000ff80", color.RGBA{0, 0, 128, 128}, false},
		{"#12", Transparent, true},
		{"#zzzzzz", Transparent, true},
	}
	for _, tt := range tests {
		got, err := FromHex(tt.hex)
		if tt.wantErr {
			assert.Error(t, err, tt.hex)
			continue
		}
		require.NoError(t, err, tt.hex)
		assert.Equal(t, tt.want, got, tt.hex)
	}
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#ff8000", AsHex(color.RGBA{255, 128, 0, 255}))
	assert.Equal(t, "#0000ff80", AsHex(color.NRGBA{0, 0, 255, 128}))

	c, err := FromHex(AsHex(color.RGBA{12, 34, 56, 255}))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{12, 34, 56, 255}, c)
}

func TestFromString(t *testing.T) {
	c, err := FromString("red")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = FromString("none")
	require.NoError(t, err)
	assert.True(t, IsNil(c))

	_, err = FromString("notacolor")
	assert.Error(t, err)
	assert.Equal(t, Transparent, MustFromString("notacolor"))
}

func TestBlend(t *testing.T) {
	assert.Equal(t, Black, Blend(0, Black, White))
	assert.Equal(t, White, Blend(1, Black, White))

	mid := Blend(0.5, Black, White)
	assert.InDelta(t, mid.R, mid.G, 1)
	assert.InDelta(t, mid.G, mid.B, 1)
	assert.Greater(t, mid.R, uint8(64))
	assert.Less(t, mid.R, uint8(192))
	assert.Equal(t, uint8(255), mid.A)

	assert.Equal(t, uint8(128), Blend(0.5, Transparent, WithA(Black, 255)).A)
}
