package endpoints

import (
	"net/url"

	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

type AccountInformation struct {
	AccountIdentifier            int64               `json:"accountIdentifier"`
	AccountType                  string              `json:"accountType"`
	Username                     string              `json:"username"`
	BackstopProvider             bool                `json:"backstopProvider"`
	Collateral                   decimal.Decimal     `json:"collateral"`
	FreeCollateral               decimal.Decimal     `json:"freeCollateral"`
	InitialMarginRequirement     decimal.Decimal     `json:"initialMarginRequirement"`
	MaintenanceMarginRequirement decimal.Decimal     `json:"maintenanceMarginRequirement"`
	Leverage                     AccountLeverage     `json:"leverage"`
	FuturesLeverage              AccountLeverage     `json:"futuresLeverage"`
	Liquidating                  bool                `json:"liquidating"`
	MarginFraction               decimal.NullDecimal `json:"marginFraction"`
	OpenMarginFraction           decimal.NullDecimal `json:"openMarginFraction"`
	MakerFee                     decimal.Decimal     `json:"makerFee"`
	TakerFee                     decimal.Decimal     `json:"takerFee"`
	TotalAccountValue            decimal.Decimal     `json:"totalAccountValue"`
	TotalPositionSize            decimal.Decimal     `json:"totalPositionSize"`
	PositionLimit                decimal.NullDecimal `json:"positionLimit"`
	PositionLimitUsed            decimal.NullDecimal `json:"positionLimitUsed"`
	UseFttCollateral             bool                `json:"useFttCollateral"`
	ChargeInterestOnNegativeUsd  bool                `json:"chargeInterestOnNegativeUsd"`
	SpotLendingEnabled           bool                `json:"spotLendingEnabled"`
	SpotMarginEnabled            bool                `json:"spotMarginEnabled"`
	SpotMarginWithdrawalsEnabled bool                `json:"spotMarginWithdrawalsEnabled"`
	Positions                    []Position          `json:"positions"`
}

type Position struct {
	Future                       string              `json:"future"`
	Side                         Side                `json:"side"`
	Size                         decimal.Decimal     `json:"size"`
	NetSize                      decimal.Decimal     `json:"netSize"`
	OpenSize                     decimal.Decimal     `json:"openSize"`
	Cost                         decimal.Decimal     `json:"cost"`
	EntryPrice                   decimal.NullDecimal `json:"entryPrice"`
	EstimatedLiquidationPrice    decimal.NullDecimal `json:"estimatedLiquidationPrice"`
	InitialMarginRequirement     decimal.Decimal     `json:"initialMarginRequirement"`
	MaintenanceMarginRequirement decimal.Decimal     `json:"maintenanceMarginRequirement"`
	LongOrderSize                decimal.Decimal     `json:"longOrderSize"`
	ShortOrderSize               decimal.Decimal     `json:"shortOrderSize"`
	RealizedPnl                  decimal.Decimal     `json:"realizedPnl"`
	UnrealizedPnl                decimal.Decimal     `json:"unrealizedPnl"`
	CollateralUsed               decimal.Decimal     `json:"collateralUsed"`
	RecentAverageOpenPrice       decimal.NullDecimal `json:"recentAverageOpenPrice"`
	RecentBreakEvenPrice         decimal.NullDecimal `json:"recentBreakEvenPrice"`
	RecentPnl                    decimal.NullDecimal `json:"recentPnl"`
	CumulativeBuySize            decimal.NullDecimal `json:"cumulativeBuySize"`
	CumulativeSellSize           decimal.NullDecimal `json:"cumulativeSellSize"`
}

type GetAccountInformation struct {
	ftx.Returns[AccountInformation]
	privateGet
}

func (GetAccountInformation) Path() string { return "/account" }

type GetPositions struct {
	ftx.Returns[[]Position]
	privateGet

	// ShowAvgPrice adds the recent average prices; nil leaves the
	// parameter out.
	ShowAvgPrice *bool `url:"showAvgPrice,omitempty"`
}

func (GetPositions) Path() string { return "/positions" }

func (r GetPositions) Query() (url.Values, error) {
	return ftx.EncodeQuery(r)
}

// ChangeAccountLeverage sets the maximum account leverage. The exchange
// replies with a null result.
type ChangeAccountLeverage struct {
	ftx.Returns[ftx.Empty]
	privatePost

	Leverage AccountLeverage
}

func (ChangeAccountLeverage) Path() string { return "/account/leverage" }

func (r ChangeAccountLeverage) Body() ([]byte, error) {
	if err := r.Leverage.validate(); err != nil {
		return nil, err
	}
	return ftx.EncodeBody(struct {
		Leverage int `json:"leverage"`
	}{int(r.Leverage)})
}
