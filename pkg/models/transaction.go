package models

import "time"

// TransactionKind identifies one independently paginated transaction
// log category.
type TransactionKind string

// Transaction log categories. Currency kinds carry an amount and a
// reason code; item kinds additionally carry the item name and rarity.
const (
	KindPrimogem TransactionKind = "primogem"
	KindCrystal  TransactionKind = "crystal"
	KindResin    TransactionKind = "resin"
	KindArtifact TransactionKind = "artifact"
	KindWeapon   TransactionKind = "weapon"
)

// CurrencyKinds lists the non-item transaction categories in merge
// priority order.
var CurrencyKinds = []TransactionKind{KindPrimogem, KindCrystal, KindResin}

// ItemKinds lists the item transaction categories in merge priority order.
var ItemKinds = []TransactionKind{KindArtifact, KindWeapon}

// AllKinds lists every transaction category in merge priority order.
var AllKinds = []TransactionKind{KindPrimogem, KindCrystal, KindResin, KindArtifact, KindWeapon}

// TransactionRecord is implemented by both currency and item
// transactions so mixed-kind feeds can be merged into one sequence.
type TransactionRecord interface {
	EntryID() int64
	EntryTime() time.Time
	RecordKind() TransactionKind
}

// Transaction is one entry of a currency transaction log.
type Transaction struct {
	// Kind is set by the client from the requested category; it is
	// not part of the wire payload.
	Kind TransactionKind `json:"-"`

	ID     FlexInt `json:"id"`
	UID    FlexInt `json:"uid"`
	Time   Time    `json:"time"`
	Amount FlexInt `json:"add_num"`
	Reason string  `json:"reason"`
}

// EntryID returns the feed id used as the pagination cursor.
func (t Transaction) EntryID() int64 { return t.ID.Int64() }

// EntryTime returns the transaction timestamp.
func (t Transaction) EntryTime() time.Time { return t.Time.Time }

// RecordKind returns the transaction category.
func (t Transaction) RecordKind() TransactionKind { return t.Kind }

// ItemTransaction is one entry of an item (artifact or weapon)
// transaction log.
type ItemTransaction struct {
	Kind TransactionKind `json:"-"`

	ID     FlexInt `json:"id"`
	UID    FlexInt `json:"uid"`
	Time   Time    `json:"time"`
	Name   string  `json:"name"`
	Rarity FlexInt `json:"rank"`
	Amount FlexInt `json:"add_num"`
}

// EntryID returns the feed id used as the pagination cursor.
func (t ItemTransaction) EntryID() int64 { return t.ID.Int64() }

// EntryTime returns the transaction timestamp.
func (t ItemTransaction) EntryTime() time.Time { return t.Time.Time }

// RecordKind returns the transaction category.
func (t ItemTransaction) RecordKind() TransactionKind { return t.Kind }
