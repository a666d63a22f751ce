//go:build rdm

package rdm

// ProductCategory classifies the general type of RDM responder (E1.20
// Table A-3). Open-ended: unrecognized 16-bit values decode to
// Unknown(raw) rather than failing.
type ProductCategory struct {
	known bool
	name  productCategoryName
	raw   uint16
}

type productCategoryName int

const (
	CategoryNotDeclared productCategoryName = iota
	CategoryFixtureFixed
	CategoryFixtureMovingYoke
	CategoryFixtureMovingMirror
	CategoryFixtureOther
	CategoryFixtureAccessoryColor
	CategoryFixtureAccessoryYoke
	CategoryFixtureAccessoryMirror
	CategoryFixtureAccessoryOther
	CategoryProjectorFixed
	CategoryProjectorMovingYoke
	CategoryProjectorMovingMirror
	CategoryProjectorOther
	CategoryAtmosphericEffect
	CategoryAtmosphericEffectPyro
	CategoryAtmosphericEffectOther
	CategoryDimmerACIncandescent
	CategoryDimmerACFluorescent
	CategoryDimmerACColdCathode
	CategoryDimmerACNonDimModule
	CategoryDimmerACLowVoltage
	CategoryDimmerControllableAC
	CategoryDimmerDCLevelOutput
	CategoryDimmerDCPWMOutput
	CategoryDimmerSpecialisedLED
	CategoryDimmerOther
	CategoryPowerControl
	CategoryPowerControlRelayACOpto
	CategoryPowerControlRelayACMech
	CategoryPowerControlRelayDC
	CategoryPowerControlScrollerAC
	CategoryPowerControlOther
	CategoryScenicDrive
	CategoryScenicDriveElectricDC
	CategoryScenicDriveElectricAC
	CategoryScenicDriveElectricServo
	CategoryScenicDriveOther
	CategoryConventional
	CategoryConventionalStillEffect
	CategoryConventionalRotatingEffect
	CategoryConventionalOther
	CategoryNetwork
	CategoryNetworkDataConverter
	CategoryNetworkMergeSplit
	CategoryNetworkOther
	CategoryControl
	CategoryControlController
	CategoryControlBackupDevice
	CategoryControlOther
	CategoryTest
	CategoryTestEquipment
	CategoryTestEquipmentOther
	CategoryOther
)

var productCategoryWire = map[productCategoryName]uint16{
	CategoryNotDeclared:                0x0000,
	CategoryFixtureFixed:               0x0100,
	CategoryFixtureMovingYoke:          0x0101,
	CategoryFixtureMovingMirror:        0x0102,
	CategoryFixtureOther:               0x01FF,
	CategoryFixtureAccessoryColor:      0x0201,
	CategoryFixtureAccessoryYoke:       0x0202,
	CategoryFixtureAccessoryMirror:     0x0203,
	CategoryFixtureAccessoryOther:      0x02FF,
	CategoryProjectorFixed:             0x0300,
	CategoryProjectorMovingYoke:        0x0301,
	CategoryProjectorMovingMirror:      0x0302,
	CategoryProjectorOther:             0x03FF,
	CategoryAtmosphericEffect:          0x0400,
	CategoryAtmosphericEffectPyro:      0x0401,
	CategoryAtmosphericEffectOther:     0x04FF,
	CategoryDimmerACIncandescent:       0x0500,
	CategoryDimmerACFluorescent:        0x0501,
	CategoryDimmerACColdCathode:        0x0502,
	CategoryDimmerACNonDimModule:       0x0503,
	CategoryDimmerACLowVoltage:         0x0504,
	CategoryDimmerControllableAC:       0x0505,
	CategoryDimmerDCLevelOutput:        0x0506,
	CategoryDimmerDCPWMOutput:          0x0507,
	CategoryDimmerSpecialisedLED:       0x0508,
	CategoryDimmerOther:                0x05FF,
	CategoryPowerControl:               0x0600,
	CategoryPowerControlRelayACOpto:    0x0601,
	CategoryPowerControlRelayACMech:    0x0602,
	CategoryPowerControlRelayDC:        0x0603,
	CategoryPowerControlScrollerAC:     0x0604,
	CategoryPowerControlOther:          0x06FF,
	CategoryScenicDrive:                0x0700,
	CategoryScenicDriveElectricDC:      0x0701,
	CategoryScenicDriveElectricAC:      0x0702,
	CategoryScenicDriveElectricServo:   0x0703,
	CategoryScenicDriveOther:           0x07FF,
	CategoryConventional:               0x0800,
	CategoryConventionalStillEffect:    0x0801,
	CategoryConventionalRotatingEffect: 0x0802,
	CategoryConventionalOther:          0x08FF,
	CategoryNetwork:                    0x0900,
	CategoryNetworkDataConverter:       0x0901,
	CategoryNetworkMergeSplit:          0x0902,
	CategoryNetworkOther:               0x09FF,
	CategoryControl:                    0x0A00,
	CategoryControlController:          0x0A01,
	CategoryControlBackupDevice:        0x0A02,
	CategoryControlOther:               0x0AFF,
	CategoryTest:                       0x0B00,
	CategoryTestEquipment:              0x0B01,
	CategoryTestEquipmentOther:         0x0BFF,
	CategoryOther:                      0x7FFF,
}

var wireToProductCategoryName = func() map[uint16]productCategoryName {
	m := make(map[uint16]productCategoryName, len(productCategoryWire))
	for name, wire := range productCategoryWire {
		m[wire] = name
	}
	return m
}()

// ProductCategoryFromWire is a total conversion over all 16-bit inputs.
func ProductCategoryFromWire(w uint16) ProductCategory {
	if name, ok := wireToProductCategoryName[w]; ok {
		return ProductCategory{known: true, name: name, raw: w}
	}
	return ProductCategory{known: false, raw: w}
}

func (p ProductCategory) Wire() uint16 { return p.raw }

func (p ProductCategory) IsUnknown() bool { return !p.known }

func (p ProductCategory) String() string {
	if !p.known {
		return "Unknown"
	}
	switch p.name {
	case CategoryNotDeclared:
		return "NotDeclared"
	case CategoryFixtureFixed:
		return "FixtureFixed"
	case CategoryFixtureMovingYoke:
		return "FixtureMovingYoke"
	case CategoryFixtureMovingMirror:
		return "FixtureMovingMirror"
	case CategoryFixtureOther:
		return "FixtureOther"
	case CategoryDimmerACIncandescent:
		return "DimmerACIncandescent"
	case CategoryControl:
		return "Control"
	case CategoryControlController:
		return "ControlController"
	case CategoryTest:
		return "Test"
	case CategoryOther:
		return "Other"
	default:
		return "ProductCategory"
	}
}
