package detector

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// NeutralScore is reported whenever a comparison cannot be performed, so a
// missing or unreadable screenshot never sinks a clone result.
const NeutralScore = 0.5

const (
	compareWidth  = 256
	compareHeight = 256
)

// Compare loads two screenshots and returns a structural similarity score in
// [0, 1]. It never fails: any I/O or decode problem degrades to the neutral
// score.
func Compare(pathA, pathB string) float64 {
	imgA, err := loadGray(pathA)
	if err != nil {
		log.Printf("Similarity comparison skipped: %v", err)
		return NeutralScore
	}
	imgB, err := loadGray(pathB)
	if err != nil {
		log.Printf("Similarity comparison skipped: %v", err)
		return NeutralScore
	}
	score := ssim(imgA, imgB)
	log.Printf("Similarity score: %.4f (%s vs %s)", score, pathA, pathB)
	return score
}

// loadGray decodes an image and scales it to a fixed grayscale canvas so the
// two inputs are always comparable regardless of page height.
func loadGray(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	rgba := image.NewRGBA(image.Rect(0, 0, compareWidth, compareHeight))
	draw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), src, src.Bounds(), draw.Src, nil)

	gray := image.NewGray(rgba.Bounds())
	draw.Draw(gray, gray.Bounds(), rgba, image.Point{}, draw.Src)
	return gray, nil
}

// ssim computes a single-window structural similarity index over the whole
// grayscale image pair.
func ssim(a, b *image.Gray) float64 {
	n := float64(compareWidth * compareHeight)

	var sumA, sumB float64
	for i := range a.Pix {
		sumA += float64(a.Pix[i])
		sumB += float64(b.Pix[i])
	}
	muA := sumA / n
	muB := sumB / n

	var varA, varB, cov float64
	for i := range a.Pix {
		da := float64(a.Pix[i]) - muA
		db := float64(b.Pix[i]) - muB
		varA += da * da
		varB += db * db
		cov += da * db
	}
	varA /= n - 1
	varB /= n - 1
	cov /= n - 1

	// Standard SSIM stabilizers for 8-bit dynamic range.
	const (
		c1 = (0.01 * 255) * (0.01 * 255)
		c2 = (0.03 * 255) * (0.03 * 255)
	)
	score := ((2*muA*muB + c1) * (2*cov + c2)) /
		((muA*muA + muB*muB + c1) * (varA + varB + c2))
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return NeutralScore
	}
	return math.Min(1, math.Max(0, v))
}
