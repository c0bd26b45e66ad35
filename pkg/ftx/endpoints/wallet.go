package endpoints

import (
	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

type Coin struct {
	ID                       string          `json:"id"`
	Name                     string          `json:"name"`
	Fiat                     bool            `json:"fiat"`
	IsToken                  bool            `json:"isToken"`
	IsEtf                    bool            `json:"isEtf"`
	TokenizedEquity          bool            `json:"tokenizedEquity"`
	SpotMargin               bool            `json:"spotMargin"`
	Collateral               bool            `json:"collateral"`
	CollateralWeight         decimal.Decimal `json:"collateralWeight"`
	UsdFungible              bool            `json:"usdFungible"`
	CanConvert               bool            `json:"canConvert"`
	CanDeposit               bool            `json:"canDeposit"`
	CanWithdraw              bool            `json:"canWithdraw"`
	Erc20Contract            string          `json:"erc20Contract"`
	Trc20Contract            string          `json:"trc20Contract"`
	Bep2Asset                string          `json:"bep2Asset"`
	SplMint                  string          `json:"splMint"`
	Methods                  []string        `json:"methods"`
	HasTag                   bool            `json:"hasTag"`
	CreditTo                 string          `json:"creditTo"`
	Hidden                   bool            `json:"hidden"`
	ImageURL                 string          `json:"imageUrl"`
	NftQuoteCurrencyEligible bool            `json:"nftQuoteCurrencyEligible"`
	ImfWeight                decimal.Decimal `json:"imfWeight"`
	// IndexPrice occasionally carries a scale no decimal can hold.
	IndexPrice float64 `json:"indexPrice"`
}

type Balance struct {
	Coin                   string          `json:"coin"`
	Free                   decimal.Decimal `json:"free"`
	SpotBorrow             decimal.Decimal `json:"spotBorrow"`
	Total                  decimal.Decimal `json:"total"`
	UsdValue               decimal.Decimal `json:"usdValue"`
	AvailableWithoutBorrow decimal.Decimal `json:"availableWithoutBorrow"`
	AvailableForWithdrawal decimal.Decimal `json:"availableForWithdrawal"`
}

type GetCoins struct {
	ftx.Returns[[]Coin]
	privateGet
}

func (GetCoins) Path() string { return "/wallet/coins" }

type GetBalances struct {
	ftx.Returns[[]Balance]
	privateGet
}

func (GetBalances) Path() string { return "/wallet/balances" }

// GetAllBalances returns balances keyed by account name; the main account
// is "main".
type GetAllBalances struct {
	ftx.Returns[map[string][]Balance]
	privateGet
}

func (GetAllBalances) Path() string { return "/wallet/all_balances" }
