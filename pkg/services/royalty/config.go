package royalty

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type tierConfig struct {
	UpTo      *decimal.Decimal `mapstructure:"up_to"`
	Rate      decimal.Decimal  `mapstructure:"rate"`
	Fixed     decimal.Decimal  `mapstructure:"fixed"`
	Threshold *decimal.Decimal `mapstructure:"threshold"`
	FixedFee  decimal.Decimal  `mapstructure:"fixed_fee"`
}

type capConfig struct {
	Year int             `mapstructure:"year"`
	Cap  decimal.Decimal `mapstructure:"cap"`
}

type reducedConfig struct {
	Breakpoint decimal.Decimal `mapstructure:"breakpoint"`
	RateBelow  decimal.Decimal `mapstructure:"rate_below"`
	RateAbove  decimal.Decimal `mapstructure:"rate_above"`
	Fixed      decimal.Decimal `mapstructure:"fixed"`
}

type feesConfig struct {
	NationalAccountsRate  decimal.Decimal `mapstructure:"national_accounts_rate"`
	BrandFundRate         decimal.Decimal `mapstructure:"brand_fund_rate"`
	BrandFundReducedRate  decimal.Decimal `mapstructure:"brand_fund_reduced_rate"`
	BrandFundCaps         []capConfig     `mapstructure:"brand_fund_caps"`
	BrandFundCapIncrement decimal.Decimal `mapstructure:"brand_fund_cap_increment"`
}

// Config is the file form of a RateTable. Every field is optional and falls
// back to the agreement defaults.
type Config struct {
	MinimumRoyalty decimal.Decimal `mapstructure:"minimum_royalty"`
	StandardTiers  []tierConfig    `mapstructure:"standard_tiers"`
	Reduced        reducedConfig   `mapstructure:"reduced"`
	Fees           feesConfig      `mapstructure:"fees"`
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalHook decodes YAML numbers and quoted amounts into decimals so that
// rates such as 0.065 are read exactly.
func decimalHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != decimalType {
			return data, nil
		}
		switch v := data.(type) {
		case decimal.Decimal:
			return v, nil
		case string:
			return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v), ",", ""))
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case uint64:
			return decimal.NewFromUint64(v), nil
		case float64:
			return decimal.NewFromFloat(v), nil
		case float32:
			return decimal.NewFromFloat32(v), nil
		default:
			return nil, fmt.Errorf("cannot decode %T as an amount", data)
		}
	}
}

func defaultConfig() Config {
	rt := DefaultRateTable()
	return Config{
		MinimumRoyalty: rt.MinimumRoyalty,
		Reduced: reducedConfig{
			Breakpoint: rt.ReducedBreakpoint,
			RateBelow:  rt.ReducedRateBelow,
			RateAbove:  rt.ReducedRateAbove,
			Fixed:      rt.ReducedFixed,
		},
		Fees: feesConfig{
			NationalAccountsRate:  rt.NationalAccountsRate,
			BrandFundRate:         rt.BrandFundRate,
			BrandFundReducedRate:  rt.BrandFundReducedRate,
			BrandFundCapIncrement: rt.BrandFundCapIncrement,
		},
	}
}

// RateTable converts the file form, keeping default tiers and caps when the
// file lists none.
func (c Config) RateTable() (RateTable, error) {
	defaults := DefaultRateTable()

	rt := RateTable{
		Tiers:          defaults.Tiers,
		MinimumRoyalty: c.MinimumRoyalty,

		ReducedBreakpoint: c.Reduced.Breakpoint,
		ReducedRateBelow:  c.Reduced.RateBelow,
		ReducedRateAbove:  c.Reduced.RateAbove,
		ReducedFixed:      c.Reduced.Fixed,

		NationalAccountsRate:  c.Fees.NationalAccountsRate,
		BrandFundRate:         c.Fees.BrandFundRate,
		BrandFundReducedRate:  c.Fees.BrandFundReducedRate,
		BrandFundCaps:         defaults.BrandFundCaps,
		BrandFundCapIncrement: c.Fees.BrandFundCapIncrement,
	}

	if len(c.StandardTiers) > 0 {
		rt.Tiers = make([]Tier, 0, len(c.StandardTiers))
		for _, t := range c.StandardTiers {
			rt.Tiers = append(rt.Tiers, Tier(t))
		}
	}

	if len(c.Fees.BrandFundCaps) > 0 {
		rt.BrandFundCaps = make([]BrandFundCap, 0, len(c.Fees.BrandFundCaps))
		for _, bc := range c.Fees.BrandFundCaps {
			rt.BrandFundCaps = append(rt.BrandFundCaps, BrandFundCap(bc))
		}
	}

	if err := rt.Validate(); err != nil {
		return RateTable{}, fmt.Errorf("invalid rate table: %w", err)
	}
	return rt, nil
}

// LoadRateTable reads a rate table file (YAML, JSON or TOML). An empty path
// returns the default table.
func LoadRateTable(path string) (RateTable, error) {
	if path == "" {
		return DefaultRateTable(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return RateTable{}, fmt.Errorf("failed to read rates file: %w", err)
	}

	cfg := defaultConfig()
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		decimalHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return RateTable{}, fmt.Errorf("failed to parse rates file: %w", err)
	}
	return cfg.RateTable()
}
