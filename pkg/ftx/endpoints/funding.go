package endpoints

import (
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

// FundingPayment is positive when the account paid funding.
type FundingPayment struct {
	ID      int64           `json:"id"`
	Future  string          `json:"future"`
	Payment decimal.Decimal `json:"payment"`
	Rate    decimal.Decimal `json:"rate"`
	Time    time.Time       `json:"time"`
}

type GetFundingPayments struct {
	ftx.Returns[[]FundingPayment]
	privateGet

	Future    string    `url:"future,omitempty"`
	StartTime time.Time `url:"start_time,omitempty,unix"`
	EndTime   time.Time `url:"end_time,omitempty,unix"`
}

func (GetFundingPayments) Path() string { return "/funding_payments" }

func (r GetFundingPayments) Query() (url.Values, error) {
	if err := timeRange(r.StartTime, r.EndTime); err != nil {
		return nil, err
	}
	return ftx.EncodeQuery(r)
}
