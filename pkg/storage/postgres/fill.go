package postgres

import (
	"context"
	"errors"
	"time"

	"ftxrest/pkg/ftx/endpoints"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertFills stores fills, skipping ones already archived. It returns the
// number of new rows.
func (p *PostgresClient) InsertFills(ctx context.Context, records []*FillRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	tx := p.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account"}, {Name: "fill_id"}},
		DoNothing: true,
	}).Create(records)

	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// LatestFillTime returns the time of the newest archived fill of a market,
// or the zero time when there is none.
func (p *PostgresClient) LatestFillTime(ctx context.Context, account, market string) (time.Time, error) {
	var rec FillRecord
	err := p.DB.WithContext(ctx).
		Where("account = ? AND market = ?", account, market).
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

func (p *PostgresClient) GetFills(ctx context.Context, account, market string, since time.Time) ([]FillRecord, error) {
	var out []FillRecord
	err := p.DB.WithContext(ctx).
		Where("account = ? AND market = ? AND time >= ?", account, market, since).
		Order("time ASC").
		Find(&out).Error
	return out, err
}

func (p *PostgresClient) DeleteFillsBefore(ctx context.Context, before time.Time) (int64, error) {
	tx := p.DB.WithContext(ctx).
		Where("time < ?", before).
		Delete(&FillRecord{})
	return tx.RowsAffected, tx.Error
}

// ToFillRecord converts a fill of the given account for insertion.
func ToFillRecord(account string, f endpoints.Fill) *FillRecord {
	return &FillRecord{
		Account:     account,
		FillID:      f.ID,
		Market:      f.Market,
		Side:        string(f.Side),
		Price:       f.Price,
		Size:        f.Size,
		OrderID:     f.OrderID,
		TradeID:     f.TradeID,
		Liquidity:   f.Liquidity,
		Fee:         f.Fee,
		FeeCurrency: f.FeeCurrency,
		FeeRate:     f.FeeRate,
		Time:        f.Time.UTC(),
	}
}
