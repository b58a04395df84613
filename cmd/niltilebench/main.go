// Command niltilebench round-trips a synthetic image through a tiled
// buffer and reports throughput and any mismatched bytes.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gpumem/niltile"
)

func main() {
	var (
		width   = flag.Int("width", 512, "image width in bytes per row")
		height  = flag.Int("height", 256, "image height in rows")
		xLog2   = flag.Int("xlog2", 1, "tile width in GOBs, as log2")
		yLog2   = flag.Int("ylog2", 1, "tile height in GOBs, as log2")
		gob4    = flag.Bool("legacy-gob4", false, "use the 64x4 legacy GOB shape instead of 64x8")
		swName  = flag.String("swizzle", "none", "copy swizzle: none, z24x8, x24s8, z32x32, x32x24s8")
		dumpOut = flag.String("dump", "", "if set, dump the linear source as a grayscale PNG to this path")
	)
	flag.Parse()

	sw, err := parseSwizzle(*swName)
	if err != nil {
		log.Fatal(err)
	}

	tiling := niltile.Tiling{GobHeightIs8: !*gob4, XLog2: uint8(*xLog2), YLog2: uint8(*yLog2)}
	if err := tiling.Validate(); err != nil {
		log.Fatalf("invalid tiling: %v", err)
	}

	div := sw.XDivisor()
	level := niltile.Extent3D[niltile.Bytes]{Width: *width, Height: *height, Depth: 1}
	linRowStride := *width / div

	linear := make([]byte, linRowStride**height)
	rand.New(rand.NewSource(1)).Read(linear)

	if *dumpOut != "" {
		if err := dumpPNG(*dumpOut, linear, linRowStride, *height); err != nil {
			log.Fatalf("dump: %v", err)
		}
		log.Printf("wrote %s (%dx%d)", *dumpOut, linRowStride, *height)
	}

	levelTiles := tiling.LevelExtentTiles(level)
	tiled := make([]byte, tiling.TileSizeB()*uint64(levelTiles.Volume()))

	lv := niltile.LinearView{Base: linear, RowStrideB: linRowStride}
	tv := niltile.TiledView{Base: tiled, LevelExtentB: level}
	extent := niltile.Extent3D[niltile.Bytes]{Width: *width, Height: *height, Depth: 1}

	start := time.Now()
	if err := niltile.CopyLinearToTiled(tv, lv, niltile.Offset3D[niltile.Bytes]{}, extent, sw, tiling); err != nil {
		log.Fatalf("CopyLinearToTiled: %v", err)
	}
	toTiledElapsed := time.Since(start)

	out := make([]byte, len(linear))
	ov := niltile.LinearView{Base: out, RowStrideB: linRowStride}
	start = time.Now()
	if err := niltile.CopyTiledToLinear(ov, tv, niltile.Offset3D[niltile.Bytes]{}, extent, sw, tiling); err != nil {
		log.Fatalf("CopyTiledToLinear: %v", err)
	}
	toLinearElapsed := time.Since(start)

	mismatches := 0
	for i := range linear {
		if linear[i] != out[i] {
			mismatches++
		}
	}

	totalB := len(linear)
	fmt.Printf("tiling=%+v swizzle=%s bytes=%d\n", tiling, sw, totalB)
	fmt.Printf("linear->tiled: %v (%.1f MB/s)\n", toTiledElapsed, mbPerSec(totalB, toTiledElapsed))
	fmt.Printf("tiled->linear: %v (%.1f MB/s)\n", toLinearElapsed, mbPerSec(totalB, toLinearElapsed))
	fmt.Printf("mismatched bytes: %d/%d\n", mismatches, totalB)

	if mismatches > 0 {
		os.Exit(1)
	}
}

func parseSwizzle(s string) (niltile.CopySwizzle, error) {
	switch s {
	case "none":
		return niltile.SwizzleNone, nil
	case "z24x8":
		return niltile.SwizzleZ24X8, nil
	case "x24s8":
		return niltile.SwizzleX24S8, nil
	case "z32x32":
		return niltile.SwizzleZ32X32, nil
	case "x32x24s8":
		return niltile.SwizzleX32X24S8, nil
	default:
		return 0, fmt.Errorf("unknown swizzle %q", s)
	}
}

func mbPerSec(bytes int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(bytes) / (1024 * 1024) / d.Seconds()
}

func dumpPNG(path string, linear []byte, stride, height int) error {
	img := image.NewGray(image.Rect(0, 0, stride, height))
	for y := 0; y < height; y++ {
		row := linear[y*stride : (y+1)*stride]
		for x, b := range row {
			img.SetGray(x, y, color.Gray{Y: b})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
