package model

import "github.com/shopspring/decimal"

// PV01 is the interest-rate risk of a product position: the price value of a
// one-basis-point yield change, with the quantity it applies to. The value
// is a static per-instrument constant.
type PV01 struct {
	Product  Bond
	Value    decimal.Decimal
	Quantity int64
}

// BucketedSector is a named group of products for aggregate risk reporting.
type BucketedSector struct {
	Name     string
	Products []Bond
}

// SectorRisk is the rolled-up risk of a bucketed sector: the sum of
// pv01 x quantity over its risked products, plus the quantity sum.
type SectorRisk struct {
	Sector   BucketedSector
	Value    decimal.Decimal
	Quantity int64
}
