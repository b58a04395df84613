package sector

// CopyLine copies tiled-side byte range [x0,x1) of a single 16-byte sector
// line between tiledLine (always the full 16-byte line) and linearLine
// (already positioned so that linearLine[0] corresponds to tiledLine[0]
// after dividing by the swizzle's x-divisor).
//
// toTiled selects the copy direction: true copies linear -> tiled, false
// copies tiled -> linear. x0 and x1 must satisfy 0 <= x0 <= x1 <= 16.
func CopyLine(sw Swizzle, toTiled bool, tiledLine, linearLine []byte, x0, x1 int) {
	if x0 >= x1 {
		return
	}
	in := sw.info()
	if in.bppTiled == 0 {
		copyRange(tiledLine, linearLine, x0, x1, toTiled)
		return
	}
	copyMasked(tiledLine, linearLine, x0, x1, in, toTiled)
}

// copyRange performs a byte-identical copy of [x0,x1) with identity
// addressing on both sides (the Raw swizzle).
func copyRange(tiledLine, linearLine []byte, x0, x1 int, toTiled bool) {
	if toTiled {
		copy(tiledLine[x0:x1], linearLine[x0:x1])
	} else {
		copy(linearLine[x0:x1], tiledLine[x0:x1])
	}
}

// copyMasked copies the meaningful byte sub-range of every tiled pixel
// that overlaps [x0,x1), per the swizzle's info.
func copyMasked(tiledLine, linearLine []byte, x0, x1 int, in info, toTiled bool) {
	firstPixel := x0 / in.bppTiled
	lastPixel := (x1 - 1) / in.bppTiled
	for pix := firstPixel; pix <= lastPixel; pix++ {
		pixStart := pix * in.bppTiled
		usefulStart := pixStart + in.usefulOff
		usefulEnd := usefulStart + in.usefulLen

		lo := max(usefulStart, x0)
		hi := min(usefulEnd, x1)
		if lo >= hi {
			continue
		}

		if in.xDivisor == 1 {
			if toTiled {
				copy(tiledLine[lo:hi], linearLine[lo:hi])
			} else {
				copy(linearLine[lo:hi], tiledLine[lo:hi])
			}
			continue
		}

		// Compacting variants (X24S8, X32X24S8) select exactly one
		// meaningful byte per pixel, so the useful range here is
		// always a single byte; divide its tiled position down to
		// find its linear position.
		for p := lo; p < hi; p++ {
			lp := p / in.xDivisor
			if toTiled {
				tiledLine[p] = linearLine[lp]
			} else {
				linearLine[lp] = tiledLine[p]
			}
		}
	}
}
