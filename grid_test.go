/*
Copyright © 2026 the mat2nc authors.
This file is part of mat2nc.

mat2nc is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

mat2nc is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with mat2nc.  If not, see <http://www.gnu.org/licenses/>.
*/

package mat2nc

import "testing"

func TestLatCoords(t *testing.T) {
	c := DefaultGrid.LatCoords()
	if len(c) != 360 {
		t.Fatalf("length: want 360, got %d", len(c))
	}
	if c[0] != -89.75 {
		t.Errorf("first: want -89.75, got %g", c[0])
	}
	if c[359] != 89.75 {
		t.Errorf("last: want 89.75, got %g", c[359])
	}
	if c[180] != 0.25 {
		t.Errorf("middle: want 0.25, got %g", c[180])
	}
	for i := 1; i < len(c); i++ {
		if c[i]-c[i-1] != 0.5 {
			t.Fatalf("spacing at %d: want 0.5, got %g", i, c[i]-c[i-1])
		}
	}
}

func TestLonCoords(t *testing.T) {
	c := DefaultGrid.LonCoords()
	if len(c) != 720 {
		t.Fatalf("length: want 720, got %d", len(c))
	}
	if c[0] != -179.75 {
		t.Errorf("first: want -179.75, got %g", c[0])
	}
	if c[719] != 179.75 {
		t.Errorf("last: want 179.75, got %g", c[719])
	}
	for i := 1; i < len(c); i++ {
		if c[i]-c[i-1] != 0.5 {
			t.Fatalf("spacing at %d: want 0.5, got %g", i, c[i]-c[i-1])
		}
	}
}

func TestGridSize(t *testing.T) {
	if s := DefaultGrid.Size(); s != 360*720 {
		t.Errorf("default grid size: want %d, got %d", 360*720, s)
	}
	if s := (Grid{Nlat: 3, Nlon: 4}).Size(); s != 12 {
		t.Errorf("small grid size: want 12, got %d", s)
	}
}
