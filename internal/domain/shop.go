package domain

// ShopItem is a digital product listed by a creator in one guild.
type ShopItem struct {
	ID          int64    `json:"item_id"`
	CreatorID   int64    `json:"creator_id,string"`
	GuildID     int64    `json:"guild_id,string"`
	Name        string   `json:"item_name"`
	Application string   `json:"application"`
	Category    string   `json:"category"`
	Price       int64    `json:"price"`
	ProductLink string   `json:"product_link"`
	Previews    []string `json:"previews,omitempty"` // at most MaxPreviewLinks, main preview first
}

// MainPreview returns the first preview link, or "" when the item has none
func (i ShopItem) MainPreview() string {
	if len(i.Previews) == 0 {
		return ""
	}
	return i.Previews[0]
}

// ExtraPreviews returns every preview after the main one
func (i ShopItem) ExtraPreviews() []string {
	if len(i.Previews) <= 1 {
		return nil
	}
	return i.Previews[1:]
}

// ShopItemSummary is the id/name/price projection used by the item picker.
type ShopItemSummary struct {
	ID    int64  `json:"item_id"`
	Name  string `json:"item_name"`
	Price int64  `json:"price"`
}

// ColumnInfo describes one column of a persisted table.
type ColumnInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NotNull    bool   `json:"not_null"`
	PrimaryKey bool   `json:"primary_key"`
}
