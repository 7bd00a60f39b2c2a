// Copyright 2026 The apicula Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bitmap implements the two dimensional bit matrix holding a decoded
// chip configuration, and rectangular views into it.
//
package bitmap

import (
	"strconv"

	"github.com/pkg/errors"
)

// Bitmap is a width x height matrix of bits, stored row-major in 64 bit words.
// Row 0 is the top row of the configuration image.
//
type Bitmap struct {
	w, h  int
	words []uint64
}

// New returns a zeroed bitmap of the given size.
//
func New(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		w:     width,
		h:     height,
		words: make([]uint64, (width*height+63)/64),
	}
}

// Width returns the number of columns in b.
//
func (b *Bitmap) Width() int { return b.w }

// Height returns the number of rows in b.
//
func (b *Bitmap) Height() int { return b.h }

func (b *Bitmap) index(row, col int) (int, bool) {
	if row < 0 || row >= b.h || col < 0 || col >= b.w {
		return 0, false
	}
	return row*b.w + col, true
}

// Get returns the bit at the given row and column. Out of range coordinates
// read as 0.
//
func (b *Bitmap) Get(row, col int) bool {
	i, ok := b.index(row, col)
	if !ok {
		return false
	}
	return b.words[i>>6]&(1<<(uint(i)&63)) != 0
}

// Set sets the bit at the given row and column. It panics if the coordinates
// are out of range.
//
func (b *Bitmap) Set(row, col int, v bool) {
	i, ok := b.index(row, col)
	if !ok {
		panic("bit " + strconv.Itoa(row) + "," + strconv.Itoa(col) + " out of range")
	}
	if v {
		b.words[i>>6] |= 1 << (uint(i) & 63)
	} else {
		b.words[i>>6] &^= 1 << (uint(i) & 63)
	}
}

// Any reports whether at least one bit is set in b.
//
func (b *Bitmap) Any() bool {
	for _, w := range b.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// View returns a view of the w x h rectangle whose top left corner is at
// column x, row y. It fails if the rectangle does not fit in b.
//
func (b *Bitmap) View(x, y, w, h int) (View, error) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > b.w || y+h > b.h {
		return View{}, errors.Errorf("rectangle %dx%d at %d,%d exceeds %dx%d bitmap", w, h, x, y, b.w, b.h)
	}
	return View{b: b, x: x, y: y, w: w, h: h}, nil
}

// View is a rectangular window into a Bitmap. It does not own the bits: a
// View stays valid as long as its Bitmap is not resized, and sees any change
// made to it.
//
type View struct {
	b          *Bitmap
	x, y, w, h int
}

// Width returns the number of columns in the view.
//
func (v View) Width() int { return v.w }

// Height returns the number of rows in the view.
//
func (v View) Height() int { return v.h }

// Origin returns the column and row of the view's top left corner in its
// Bitmap.
//
func (v View) Origin() (x, y int) { return v.x, v.y }

// Get returns the bit at the given row and column, relative to the view's
// origin. Coordinates outside the view read as 0.
//
func (v View) Get(row, col int) bool {
	if v.b == nil || row < 0 || row >= v.h || col < 0 || col >= v.w {
		return false
	}
	return v.b.Get(v.y+row, v.x+col)
}

// Any reports whether at least one bit is set within the view.
//
func (v View) Any() bool {
	if v.b == nil {
		return false
	}
	for row := v.y; row < v.y+v.h; row++ {
		base := row * v.b.w
		for i := base + v.x; i < base+v.x+v.w; {
			word := v.b.words[i>>6] >> (uint(i) & 63)
			// bits of this word that still belong to the view's row
			n := 64 - (i & 63)
			if rem := base + v.x + v.w - i; rem < n {
				n = rem
				word &= 1<<uint(n) - 1
			}
			if word != 0 {
				return true
			}
			i += n
		}
	}
	return false
}
