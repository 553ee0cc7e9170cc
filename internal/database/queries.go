package database

import (
	"fmt"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/osse101/RocksBot_Go/internal/domain"
)

// ProgressionColumns is the select list for user_progression, in scan order.
var ProgressionColumns = []string{
	ColUserID, ColGuildID, ColBalance, ColXP, ColLevel,
	ColLastCoinClaim, ColLastXPClaim, ColLastDaily, ColDailyStreak, ColDailySpamCount,
}

// ItemColumns is the select list for shop_items, in scan order.
var ItemColumns = []string{
	ColItemID, ColCreatorID, ColGuildID, ColItemName, ColApplication, ColCategory,
	ColPrice, ColProductLink, ColScreenshot1, ColScreenshot2, ColScreenshot3,
}

// RowScanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// Queries builds the SQL shared by every backend. Only the placeholder
// format differs between dialects.
type Queries struct {
	sb sq.StatementBuilderType
}

// NewQueries returns a builder for the given placeholder format
// (sq.Dollar for postgres, sq.Question for sqlite).
func NewQueries(ph sq.PlaceholderFormat) Queries {
	return Queries{sb: sq.StatementBuilder.PlaceholderFormat(ph)}
}

func keyEq(key domain.UserKey) sq.Eq {
	return sq.Eq{ColUserID: key.UserID, ColGuildID: key.GuildID}
}

// InsertProgressionIfAbsent inserts a default row and leaves an existing row untouched.
func (q Queries) InsertProgressionIfAbsent(key domain.UserKey) (string, []any, error) {
	return q.sb.Insert(TableProgression).
		Columns(ColUserID, ColGuildID).
		Values(key.UserID, key.GuildID).
		Suffix("ON CONFLICT (" + ColUserID + ", " + ColGuildID + ") DO NOTHING").
		ToSql()
}

// SelectProgression reads one progression row.
func (q Queries) SelectProgression(key domain.UserKey) (string, []any, error) {
	return q.sb.Select(ProgressionColumns...).
		From(TableProgression).
		Where(keyEq(key)).
		ToSql()
}

// UpdateProgression writes only the columns named by patch.
func (q Queries) UpdateProgression(key domain.UserKey, patch domain.ProgressionPatch) (string, []any, error) {
	return q.sb.Update(TableProgression).
		SetMap(ProgressionSetMap(patch)).
		Where(keyEq(key)).
		ToSql()
}

// InsertItem inserts a catalog row and returns its generated id.
func (q Queries) InsertItem(item domain.ShopItem) (string, []any, error) {
	shots := PreviewValues(item.Previews)
	return q.sb.Insert(TableItems).
		Columns(ColCreatorID, ColGuildID, ColItemName, ColApplication, ColCategory,
			ColPrice, ColProductLink, ColScreenshot1, ColScreenshot2, ColScreenshot3).
		Values(item.CreatorID, item.GuildID, item.Name, item.Application, item.Category,
			item.Price, item.ProductLink, shots[0], shots[1], shots[2]).
		Suffix("RETURNING " + ColItemID).
		ToSql()
}

// SelectItem reads one catalog row by id.
func (q Queries) SelectItem(itemID int64) (string, []any, error) {
	return q.sb.Select(ItemColumns...).
		From(TableItems).
		Where(sq.Eq{ColItemID: itemID}).
		ToSql()
}

// SelectItemsByCreator lists a creator's uploads in one guild.
func (q Queries) SelectItemsByCreator(guildID, creatorID int64) (string, []any, error) {
	return q.sb.Select(ItemColumns...).
		From(TableItems).
		Where(sq.Eq{ColGuildID: guildID, ColCreatorID: creatorID}).
		OrderBy(ColItemID).
		ToSql()
}

// SelectCategories lists the distinct categories of an application.
func (q Queries) SelectCategories(guildID int64, application string) (string, []any, error) {
	return q.sb.Select(ColCategory).
		Distinct().
		From(TableItems).
		Where(sq.Eq{ColGuildID: guildID, ColApplication: application}).
		OrderBy(ColCategory).
		ToSql()
}

// SelectItemsInCategory projects id, name and price for the item picker.
func (q Queries) SelectItemsInCategory(guildID int64, application, category string) (string, []any, error) {
	return q.sb.Select(ColItemID, ColItemName, ColPrice).
		From(TableItems).
		Where(sq.Eq{ColGuildID: guildID, ColApplication: application, ColCategory: category}).
		OrderBy(ColItemID).
		ToSql()
}

// UpdateItem writes only the columns named by patch.
func (q Queries) UpdateItem(itemID int64, patch domain.ItemPatch) (string, []any, error) {
	return q.sb.Update(TableItems).
		SetMap(ItemSetMap(patch)).
		Where(sq.Eq{ColItemID: itemID}).
		ToSql()
}

// DeleteItem removes one catalog row.
func (q Queries) DeleteItem(itemID int64) (string, []any, error) {
	return q.sb.Delete(TableItems).
		Where(sq.Eq{ColItemID: itemID}).
		ToSql()
}

// ProgressionSetMap maps the set fields of a patch to column values.
// Column names come from this package only, never from callers.
func ProgressionSetMap(p domain.ProgressionPatch) map[string]any {
	set := make(map[string]any)
	if p.Balance != nil {
		set[ColBalance] = *p.Balance
	}
	if p.XP != nil {
		set[ColXP] = *p.XP
	}
	if p.Level != nil {
		set[ColLevel] = *p.Level
	}
	if p.LastCoinClaim != nil {
		set[ColLastCoinClaim] = EncodeEpoch(*p.LastCoinClaim)
	}
	if p.LastXPClaim != nil {
		set[ColLastXPClaim] = EncodeEpoch(*p.LastXPClaim)
	}
	if p.LastDailyClaim != nil {
		set[ColLastDaily] = domain.FormatDate(*p.LastDailyClaim)
	}
	if p.DailyStreak != nil {
		set[ColDailyStreak] = *p.DailyStreak
	}
	if p.DailySpamCount != nil {
		set[ColDailySpamCount] = *p.DailySpamCount
	}
	return set
}

// ItemSetMap maps the set fields of an item patch to column values.
func ItemSetMap(p domain.ItemPatch) map[string]any {
	set := make(map[string]any)
	if p.Name != nil {
		set[ColItemName] = *p.Name
	}
	if p.Application != nil {
		set[ColApplication] = *p.Application
	}
	if p.Category != nil {
		set[ColCategory] = *p.Category
	}
	if p.Price != nil {
		set[ColPrice] = *p.Price
	}
	if p.ProductLink != nil {
		set[ColProductLink] = *p.ProductLink
	}
	return set
}

// ScanProgression reads a row selected with ProgressionColumns.
func ScanProgression(row RowScanner) (*domain.UserProgression, error) {
	var (
		u         domain.UserProgression
		coinClaim float64
		xpClaim   float64
		lastDaily *string
	)
	if err := row.Scan(&u.UserID, &u.GuildID, &u.Balance, &u.XP, &u.Level,
		&coinClaim, &xpClaim, &lastDaily, &u.DailyStreak, &u.DailySpamCount); err != nil {
		return nil, err
	}
	u.LastCoinClaim = DecodeEpoch(coinClaim)
	u.LastXPClaim = DecodeEpoch(xpClaim)
	if lastDaily != nil && *lastDaily != "" {
		d, err := domain.ParseDate(*lastDaily)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedToParseLastDaily, *lastDaily, err)
		}
		u.LastDailyClaim = &d
	}
	return &u, nil
}

// ScanItem reads a row selected with ItemColumns.
func ScanItem(row RowScanner) (*domain.ShopItem, error) {
	var (
		item  domain.ShopItem
		shots [domain.MaxPreviewLinks]*string
	)
	if err := row.Scan(&item.ID, &item.CreatorID, &item.GuildID, &item.Name, &item.Application,
		&item.Category, &item.Price, &item.ProductLink, &shots[0], &shots[1], &shots[2]); err != nil {
		return nil, err
	}
	for _, s := range shots {
		if s != nil && *s != "" {
			item.Previews = append(item.Previews, *s)
		}
	}
	return &item, nil
}

// ScanSummary reads a row selected by SelectItemsInCategory.
func ScanSummary(row RowScanner) (domain.ShopItemSummary, error) {
	var s domain.ShopItemSummary
	err := row.Scan(&s.ID, &s.Name, &s.Price)
	return s, err
}

// PreviewValues spreads preview links over the screenshot columns; missing ones are NULL.
func PreviewValues(previews []string) [domain.MaxPreviewLinks]any {
	var out [domain.MaxPreviewLinks]any
	for i := range out {
		if i < len(previews) && previews[i] != "" {
			out[i] = previews[i]
		}
	}
	return out
}

// EncodeEpoch stores a timestamp as fractional Unix seconds; the zero time is 0.
func EncodeEpoch(t time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	return float64(t.UnixNano()) / float64(time.Second)
}

// DecodeEpoch is the inverse of EncodeEpoch, truncated to microseconds.
func DecodeEpoch(f float64) time.Time {
	if f <= 0 {
		return time.Time{}
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*1e6)*int64(time.Microsecond)).UTC()
}
