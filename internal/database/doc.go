// Package database opens the relational store and migrates the entity
// schema. CRUD operations live in the per-entity subpackages (users,
// categories, authors, books, reservations, loans), each exposing a
// Repository over the shared *gorm.DB.
//
// Free-text columns are stored in the escaped encoding from
// internal/textcodec; repositories escape on write and unescape on read.
// Lookups by id return (nil, nil) when no row exists: not-found is a normal
// outcome, not an error. All other store failures propagate untranslated.
package database
