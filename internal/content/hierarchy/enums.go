// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hierarchy

import "strings"

// # Product Enums

// ProductType distinguishes books (story/chapter/verse) from songbooks (hymns).
type ProductType string

const (
	ProductBook ProductType = "book"
	ProductSong ProductType = "song"
)

// IsValid reports whether t is a known product type.
func (t ProductType) IsValid() bool {
	return t == ProductBook || t == ProductSong
}

// ContentType states whether a product is free or paywalled after FreePages.
type ContentType string

const (
	ContentFree ContentType = "free"
	ContentPaid ContentType = "paid"
)

// IsValid reports whether c is a known content type.
func (c ContentType) IsValid() bool {
	return c == ContentFree || c == ContentPaid
}

// ProductStatus is the publication state of a product.
type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusInactive ProductStatus = "inactive"
	StatusDraft    ProductStatus = "draft"
)

// IsValid reports whether s is a known status.
func (s ProductStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDraft:
		return true
	}
	return false
}

// # Entity Kinds

// Kind names an entity type in logs, metrics and error messages.
type Kind string

const (
	KindProduct  Kind = "product"
	KindStory    Kind = "story"
	KindChapter  Kind = "chapter"
	KindVerse    Kind = "verse"
	KindHymn     Kind = "hymn"
	KindLanguage Kind = "language"
)

// Title returns the capitalised kind, e.g. "Story", for user-facing messages.
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Parent returns the kind that owns k, or "" for roots and configuration.
func (k Kind) Parent() Kind {
	switch k {
	case KindStory, KindHymn:
		return KindProduct
	case KindChapter:
		return KindStory
	case KindVerse:
		return KindChapter
	}
	return ""
}
