//go:build rdm

package rdm

// ProductDetail further classifies a responder beyond its ProductCategory
// (E1.20 Table A-5). Open-ended: unrecognized values decode to
// Unknown(raw).
type ProductDetail struct {
	known bool
	name  productDetailName
	raw   uint16
}

type productDetailName int

const (
	DetailNotDeclared productDetailName = iota
	DetailArc
	DetailMetalHalide
	DetailIncandescent
	DetailLED
	DetailFluorescent
	DetailColorscroller
	DetailMirrorBallRotator
	DetailOther
	DetailSmokeMachine
	DetailStrobe
	DetailLaser
	DetailFlashlamp
)

var productDetailWire = map[productDetailName]uint16{
	DetailNotDeclared:      0x0000,
	DetailArc:              0x0001,
	DetailMetalHalide:      0x0002,
	DetailIncandescent:     0x0003,
	DetailLED:              0x0004,
	DetailFluorescent:      0x0005,
	DetailColorscroller:    0x0006,
	DetailMirrorBallRotator: 0x0007,
	DetailOther:            0x0008,
	DetailSmokeMachine:     0x0046,
	DetailStrobe:           0x0048,
	DetailLaser:            0x0049,
	DetailFlashlamp:        0x004A,
}

var wireToProductDetailName = func() map[uint16]productDetailName {
	m := make(map[uint16]productDetailName, len(productDetailWire))
	for k, v := range productDetailWire {
		m[v] = k
	}
	return m
}()

func ProductDetailFromWire(w uint16) ProductDetail {
	if name, ok := wireToProductDetailName[w]; ok {
		return ProductDetail{known: true, name: name, raw: w}
	}
	return ProductDetail{known: false, raw: w}
}

func (p ProductDetail) Wire() uint16   { return p.raw }
func (p ProductDetail) IsUnknown() bool { return !p.known }
