package endpoints

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"ftxrest/pkg/ftx"
)

type Subaccount struct {
	Nickname    string `json:"nickname"`
	Deletable   bool   `json:"deletable"`
	Editable    bool   `json:"editable"`
	Special     bool   `json:"special"`
	Competition bool   `json:"competition"`
}

type Transfer struct {
	ID     int64           `json:"id"`
	Coin   string          `json:"coin"`
	Size   decimal.Decimal `json:"size"`
	Time   time.Time       `json:"time"`
	Notes  string          `json:"notes"`
	Status string          `json:"status"`
}

type GetSubaccounts struct {
	ftx.Returns[[]Subaccount]
	privateGet
}

func (GetSubaccounts) Path() string { return "/subaccounts" }

type CreateSubaccount struct {
	ftx.Returns[Subaccount]
	privatePost

	Nickname string
}

func (CreateSubaccount) Path() string { return "/subaccounts" }

func (r CreateSubaccount) Body() ([]byte, error) {
	if r.Nickname == "" {
		return nil, invalid("nickname", "is empty")
	}
	return ftx.EncodeBody(struct {
		Nickname string `json:"nickname"`
	}{r.Nickname})
}

type ChangeSubaccountName struct {
	ftx.Returns[ftx.Empty]
	privatePost

	Nickname    string
	NewNickname string
}

func (ChangeSubaccountName) Path() string { return "/subaccounts/update_name" }

func (r ChangeSubaccountName) Body() ([]byte, error) {
	if r.Nickname == "" {
		return nil, invalid("nickname", "is empty")
	}
	if r.NewNickname == "" {
		return nil, invalid("newNickname", "is empty")
	}
	return ftx.EncodeBody(struct {
		Nickname    string `json:"nickname"`
		NewNickname string `json:"newNickname"`
	}{r.Nickname, r.NewNickname})
}

type DeleteSubaccount struct {
	ftx.Returns[ftx.Empty]
	privateDelete

	Nickname string
}

func (DeleteSubaccount) Path() string { return "/subaccounts" }

func (r DeleteSubaccount) Body() ([]byte, error) {
	if r.Nickname == "" {
		return nil, invalid("nickname", "is empty")
	}
	return ftx.EncodeBody(struct {
		Nickname string `json:"nickname"`
	}{r.Nickname})
}

type GetSubaccountBalances struct {
	ftx.Returns[[]Balance]
	privateGet
	path string
}

func NewGetSubaccountBalances(nickname string) (*GetSubaccountBalances, error) {
	path, err := ftx.ExpandPath("/subaccounts/{nickname}/balances", ftx.PathParam{Name: "nickname", Value: nickname})
	if err != nil {
		return nil, err
	}
	return &GetSubaccountBalances{path: path}, nil
}

func (r *GetSubaccountBalances) Path() string { return r.path }

// TransferBetweenSubaccounts moves a coin between accounts. An empty
// Source or Destination is the main account and is sent as null.
type TransferBetweenSubaccounts struct {
	ftx.Returns[Transfer]
	privatePost

	Coin        string
	Size        decimal.Decimal
	Source      string
	Destination string
}

func (TransferBetweenSubaccounts) Path() string { return "/subaccounts/transfer" }

func (r TransferBetweenSubaccounts) Body() ([]byte, error) {
	if r.Coin == "" {
		return nil, invalid("coin", "is empty")
	}
	if !r.Size.IsPositive() {
		return nil, invalid("size", "must be positive")
	}
	if r.Source == r.Destination {
		return nil, invalid("destination", "equals source")
	}
	p := struct {
		Coin        string      `json:"coin"`
		Size        json.Number `json:"size"`
		Source      *string     `json:"source"`
		Destination *string     `json:"destination"`
	}{Coin: r.Coin, Size: number(r.Size)}
	if r.Source != "" {
		p.Source = &r.Source
	}
	if r.Destination != "" {
		p.Destination = &r.Destination
	}
	return ftx.EncodeBody(p)
}
