// Package assets holds the compiled-in 240x240 images.
//
// The blobs are stored top row first, the scan order the panel is left in
// after lcd.Init. Regenerate them with go generate.
package assets

import (
	_ "embed"

	"badge/raster"
)

//go:generate go run ../cmd/mkasset -pattern eye -out eye.b
//go:generate go run ../cmd/mkasset -pattern rings -out rings.b
//go:generate go run ../cmd/mkasset -pattern checker -out checker.b
//go:generate go run ../cmd/mkasset -pattern sphere -out sphere.b
//go:generate go run ../cmd/mkasset -pattern plasma -out plasma.b
//go:generate go run ../cmd/mkasset -pattern stripes -out stripes.b

var (
	//go:embed eye.b
	eyeBlob []byte
	//go:embed rings.b
	ringsBlob []byte
	//go:embed checker.b
	checkerBlob []byte
	//go:embed sphere.b
	sphereBlob []byte
	//go:embed plasma.b
	plasmaBlob []byte
	//go:embed stripes.b
	stripesBlob []byte
)

var (
	Eye     = raster.MustAsset(eyeBlob)
	Rings   = raster.MustAsset(ringsBlob)
	Checker = raster.MustAsset(checkerBlob)
	Sphere  = raster.MustAsset(sphereBlob)
	Plasma  = raster.MustAsset(plasmaBlob)
	Stripes = raster.MustAsset(stripesBlob)
)

// ByName maps asset names, as used in playlists, to images.
var ByName = map[string]raster.Asset{
	"eye":     Eye,
	"rings":   Rings,
	"checker": Checker,
	"sphere":  Sphere,
	"plasma":  Plasma,
	"stripes": Stripes,
}
