package store

const (
	// BonusCollection is the Firestore collection holding one document per bonus.
	BonusCollection = "bonuses"

	// BonusSheetRange covers columns A..H of the Entries tab, below the header row.
	BonusSheetRange = "Entries!A2:H"

	firstDataRow = 2
)
