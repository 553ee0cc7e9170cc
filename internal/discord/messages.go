package discord

// Friendly message constants for Discord responses
const (
	// Economy
	MsgBalanceTitle     = "💰 Your Balance"
	MsgBalanceFmt       = "You currently have **%s** coins."
	MsgLevelTitle       = "📈 Your Level"
	MsgDropRatesTitle   = "💧 Your Drop Rates"
	MsgDropRatesFmt     = "Your rewards are based on your **Level %d** and **%.2fx Luck Multiplier**."
	MsgDropRangeFmt     = "**Range:** 1 - %d %s\n**High-Tier Chance:** %.1f%%"
	MsgLevelUpFmt       = "🎉 Congratulations %s, you have reached **Level %d**!"
	MsgDailyTitle       = "✅ Daily Reward Claimed!"
	MsgDailyFmt         = "You received **%s** coins!"
	MsgStreakFmt        = "🔥 Your current daily streak is **%d** days."
	MsgStreakDaysFmt    = "🔥 %d days"
	MsgLuckTitle        = "✨ Your Luck Stats"
	MsgLuckFmt          = "Your luck multiplier is **%.2fx** based on your **%d-day** streak."
	MsgCoinsFmt         = "%s coins"
	MsgDropRatesFailed  = "An error occurred while fetching your drop rates."
	MsgDailyFailed      = "An error occurred while claiming your daily reward."
	MsgProgressFailed   = "An error occurred while loading your progress."
	MsgGuildOnly        = "This command can only be used in a server."
	MsgAmountPositive   = "Amount must be positive."
	MsgPriceNonNegative = "Price cannot be negative."

	// Shop
	MsgShopWelcome        = "Welcome to the shop! Please select an application to browse:"
	MsgChooseCategoryFmt  = "Please select a category for **%s**."
	MsgChooseItemFmt      = "Showing items for **%s**. Please select an item:"
	MsgCategoryHolder     = "Select a category..."
	MsgItemHolder         = "Select an item to purchase..."
	MsgNoCategories       = "No categories found"
	MsgNoItems            = "No items found"
	MsgNoCategoriesSelect = "There are no categories to select."
	MsgNoItemsSelect      = "There are no items to select in this category."
	MsgItemOptionFmt      = "%s (%s coins)"
	MsgConfirmTitleFmt    = "Confirm Purchase: %s"
	MsgConfirmFmt         = "Are you sure you want to buy this for **%s** coins?"
	MsgBuyNow             = "Buy Now"
	MsgMorePreviews       = "More Previews"
	MsgPreviewLinkFmt     = "[Preview %d](%s)"
	MsgSessionExpired     = "⏳ This shop menu has expired. Run /shop again."
	MsgNotYourMenu        = "This menu belongs to someone else. Run /shop to open your own."
	MsgStaleSelection     = "That option is no longer available."
	MsgItemGone           = "This item seems to have been removed from the shop."
	MsgNotEnoughCoinsFmt  = "You don't have enough coins! You need %s coins."
	MsgProcessing         = "⏳ Processing your purchase..."
	MsgPurchaseSentFmt    = "Purchase complete! I've sent the link for **%s** to your DMs."
	MsgDMRefunded         = "I couldn't DM you. Please enable DMs. Your purchase was refunded."
	MsgRefundFailed       = "I couldn't DM you and the refund failed. An admin has been notified."
	MsgPurchaseFailed     = "An error occurred during purchase."
	MsgChannelOnlyFmt     = "You can only use this command in the <#%d> channel."

	// Delivery and logs
	MsgDeliveryTitle      = "✅ Purchase Successful!"
	MsgDeliveryFmt        = "DEI! Tambi! thank you for purchasing **%s**."
	MsgDownload           = "Download"
	MsgDownloadLinkFmt    = "[Click Here](%s)"
	MsgPublicLogTitle     = "New Purchase!"
	MsgPublicLogFmt       = "**%s** just bought **%s**!\n\nThanks for buying the product ❤️"
	MsgAdminLogTitle      = "Admin Purchase Log"
	MsgUnknownCreatorFmt  = "Unknown Creator (`%d`)"
	MsgNamedIDFmt         = "%s (`%s`)"
	MsgItemIDFmt          = "%s (`%d`)"
	MsgScreenshots        = "Screenshots"
	MsgScreenshotMainFmt  = "[Main](%s)"
	MsgScreenshotExtraFmt = "[Extra %d](%s)"

	// Creator
	MsgNotCreator       = "You're not a creator to upload stuff"
	MsgUploadSuccess    = "The product is put into the sale successfully."
	MsgUploadFailed     = "An error occurred while adding the item."
	MsgPreviewsNeeded   = "For FX and Project Files, you must upload all three screenshots."
	MsgPriceNotNegative = "Price must be a positive number."
	MsgNewItemTitle     = "🚀 New Item Alert!"
	MsgNewItemFmt       = "A new item has just been added to the shop by %s!"
	MsgNoUploads        = "You haven't uploaded any items yet."
	MsgMyUploadsTitle   = "My Uploads"
	MsgUploadEntryFmt   = "%s (ID: %d)"
	MsgUploadDetailFmt  = "App: %s | Category: %s | Price: %s coins"
	MsgUploadsFailed    = "An error occurred while fetching your uploads."
	MsgEveryoneMention  = "@everyone"
	MsgRoleMentionFmt   = "<@&%s>"

	// Admin
	MsgAdminOnly          = "This command is for Admins only."
	MsgGaveCoinsFmt       = "Gave %s coins to %s. Their new balance is %s."
	MsgRemovedCoinsFmt    = "Removed %s coins from %s. Their new balance is %s."
	MsgPriceUpdatedFmt    = "Updated price for item ID `%d` to **%s** coins."
	MsgItemRemovedFmt     = "Successfully removed item ID `%d` from the shop."
	MsgItemNotFoundFmt    = "No item with ID `%d` exists."
	MsgSchemaTitle        = "Shop Database Schema (`shop_items` table)"
	MsgSchemaColumnFmt    = "Column: %s\n  Type: %s\n  Not Null: %s\n  Primary Key: %s\n\n"
	MsgYes                = "Yes"
	MsgNo                 = "No"
	MsgGiveCoinsFailed    = "An error occurred while giving coins."
	MsgRemoveCoinsFailed  = "An error occurred while removing coins."
	MsgSetPriceFailed     = "An error occurred while setting the price."
	MsgRemoveItemFailed   = "An error occurred while removing the item."
	MsgSchemaFailed       = "An error occurred while fetching the database schema."
	MsgGenericError       = "❌ Something went wrong."
	MsgInsufficientFunds  = "⚠️ **Not Enough Coins!**\nYou don't have enough coins for this purchase."
	MsgItemNotFound       = "❓ **Item Not Found**\nMaybe check the item ID?"
	MsgInvalidInputPrefix = "❌ "
)
