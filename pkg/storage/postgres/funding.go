package postgres

import (
	"context"
	"errors"
	"time"

	"ftxrest/pkg/ftx/endpoints"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (p *PostgresClient) InsertFundingPayments(ctx context.Context, records []*FundingPaymentRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	tx := p.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account"}, {Name: "payment_id"}},
		DoNothing: true,
	}).Create(records)

	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// LatestFundingTime returns the newest archived payment time of the account,
// or the zero time when there is none.
func (p *PostgresClient) LatestFundingTime(ctx context.Context, account string) (time.Time, error) {
	var rec FundingPaymentRecord
	err := p.DB.WithContext(ctx).
		Where("account = ?", account).
		Order("time DESC").
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return rec.Time, nil
}

func ToFundingPaymentRecord(account string, fp endpoints.FundingPayment) *FundingPaymentRecord {
	return &FundingPaymentRecord{
		Account:   account,
		PaymentID: fp.ID,
		Future:    fp.Future,
		Payment:   fp.Payment,
		Rate:      fp.Rate,
		Time:      fp.Time.UTC(),
	}
}
