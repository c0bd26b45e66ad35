package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

// FillRecord is one archived fill. (account, fill_id) is unique so repeated
// syncs over the same window are no-ops.
type FillRecord struct {
	ID uint `gorm:"primaryKey"`

	Account string `gorm:"type:text;not null;index:idx_fill_account_fill,unique;index:idx_fill_account_market_time"`
	FillID  int64  `gorm:"not null;index:idx_fill_account_fill,unique"`

	Market      string          `gorm:"type:text;not null;index:idx_fill_account_market_time"`
	Side        string          `gorm:"type:varchar(4);not null"`
	Price       decimal.Decimal `gorm:"type:numeric;not null"`
	Size        decimal.Decimal `gorm:"type:numeric;not null"`
	OrderID     int64           `gorm:"not null"`
	TradeID     int64           `gorm:"not null"`
	Liquidity   string          `gorm:"type:varchar(5);not null"`
	Fee         decimal.Decimal `gorm:"type:numeric;not null"`
	FeeCurrency string          `gorm:"type:text;not null"`
	FeeRate     decimal.Decimal `gorm:"type:numeric;not null"`

	Time time.Time `gorm:"not null;index:idx_fill_account_market_time"`

	RecordedAt time.Time `gorm:"autoCreateTime"`
}

func (FillRecord) TableName() string {
	return "fill_record"
}

type FundingPaymentRecord struct {
	ID uint `gorm:"primaryKey"`

	Account   string `gorm:"type:text;not null;index:idx_funding_account_payment,unique"`
	PaymentID int64  `gorm:"not null;index:idx_funding_account_payment,unique"`

	Future  string          `gorm:"type:text;not null;index:idx_funding_future_time"`
	Payment decimal.Decimal `gorm:"type:numeric;not null"`
	Rate    decimal.Decimal `gorm:"type:numeric;not null"`
	Time    time.Time       `gorm:"not null;index:idx_funding_future_time"`

	RecordedAt time.Time `gorm:"autoCreateTime"`
}

func (FundingPaymentRecord) TableName() string {
	return "funding_payment_record"
}
