// Package ops loads the runtime configuration: product reference data, the
// PV01 table, sector buckets, data generation knobs and output locations.
// A missing file or omitted section falls back to the built-in defaults.
package ops

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"github.com/ycsun666/MTH9815-Final/internal/model"
)

const maturityLayout = "2006-01-02"

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Seed     int64             `json:"seed"`
	Data     DataConfig        `json:"data"`
	Products []ProductConfig   `json:"products" validate:"omitempty,dive"`
	PV01     map[string]string `json:"pv01"`
	Sectors  []SectorConfig    `json:"sectors" validate:"omitempty,dive"`
	History  HistoryConfig     `json:"history"`
}

// DataConfig controls synthetic data generation.
type DataConfig struct {
	Dir         string `json:"dir"`
	PricePoints int    `json:"pricePoints" validate:"gte=0"`
	BookPoints  int    `json:"bookPoints" validate:"gte=0"`
}

// ProductConfig describes one tradable bond.
type ProductConfig struct {
	CUSIP    string  `json:"cusip" validate:"required"`
	Ticker   string  `json:"ticker" validate:"required"`
	Coupon   float64 `json:"coupon" validate:"gt=0"`
	Maturity string  `json:"maturity" validate:"required"`
}

// SectorConfig describes one risk bucket.
type SectorConfig struct {
	Name     string   `json:"name" validate:"required"`
	Products []string `json:"products" validate:"min=1"`
}

// HistoryConfig controls the historical sink outputs.
type HistoryConfig struct {
	Dir      string          `json:"dir"`
	Postgres *PostgresConfig `json:"postgres"`
}

// PostgresConfig enables the optional PostgreSQL history mirror.
type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port" validate:"gte=0"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database" validate:"required"`
	SSLMode  string `json:"sslMode"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Seed        int64
	DataDir     string
	PricePoints int
	BookPoints  int
	HistoryDir  string
	Products    *model.ProductStore
	PV01        map[string]decimal.Decimal
	Sectors     []model.BucketedSector
	Postgres    *PostgresConfig
}

// Load reads a JSON config file and resolves it. An empty path yields the
// defaults.
func Load(path string) (Loaded, error) {
	cfg := FileConfig{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Loaded{}, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Loaded{}, errors.Wrap(err, "parse config")
		}
		if err := validator.New().Struct(cfg); err != nil {
			return Loaded{}, errors.Wrap(err, "validate config")
		}
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	loaded := Loaded{
		Seed:        cfg.Seed,
		DataDir:     cfg.Data.Dir,
		PricePoints: cfg.Data.PricePoints,
		BookPoints:  cfg.Data.BookPoints,
		HistoryDir:  cfg.History.Dir,
		Postgres:    cfg.History.Postgres,
	}
	if loaded.Seed == 0 {
		loaded.Seed = defaultSeed
	}
	if loaded.DataDir == "" {
		loaded.DataDir = "data"
	}
	if loaded.PricePoints == 0 {
		loaded.PricePoints = defaultPricePoints
	}
	if loaded.BookPoints == 0 {
		loaded.BookPoints = defaultBookPoints
	}
	if loaded.HistoryDir == "" {
		loaded.HistoryDir = "output"
	}

	productCfgs := cfg.Products
	if len(productCfgs) == 0 {
		productCfgs = defaultProducts
	}
	bonds := make([]model.Bond, 0, len(productCfgs))
	for _, pc := range productCfgs {
		maturity, err := time.Parse(maturityLayout, pc.Maturity)
		if err != nil {
			return Loaded{}, errors.Wrap(err, "maturity of "+pc.CUSIP)
		}
		bonds = append(bonds, model.Bond{
			CUSIP:    pc.CUSIP,
			Ticker:   pc.Ticker,
			Coupon:   pc.Coupon,
			Maturity: maturity,
		})
	}
	loaded.Products = model.NewProductStore(bonds)

	pv01Cfg := cfg.PV01
	if len(pv01Cfg) == 0 {
		pv01Cfg = defaultPV01
	}
	loaded.PV01 = make(map[string]decimal.Decimal, len(pv01Cfg))
	for cusip, value := range pv01Cfg {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return Loaded{}, errors.Wrap(err, "pv01 of "+cusip)
		}
		loaded.PV01[cusip] = d
	}

	sectorCfgs := cfg.Sectors
	if len(sectorCfgs) == 0 {
		sectorCfgs = defaultSectors
	}
	loaded.Sectors = make([]model.BucketedSector, 0, len(sectorCfgs))
	for _, sc := range sectorCfgs {
		sector := model.BucketedSector{Name: sc.Name}
		for _, cusip := range sc.Products {
			bond, err := loaded.Products.Get(cusip)
			if err != nil {
				return Loaded{}, errors.Wrap(err, "sector "+sc.Name)
			}
			sector.Products = append(sector.Products, bond)
		}
		loaded.Sectors = append(loaded.Sectors, sector)
	}
	return loaded, nil
}
