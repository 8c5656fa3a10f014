// Package users provides database operations for library patrons.
//
// A patron's emails and phones are stored as JSON arrays of escaped values,
// one text column each. Writes filter the candidate lists against every
// other patron's stored values: a value already held by someone else is
// dropped silently, not rejected. The existence scan and the write are two
// separate round-trips with no transaction, so concurrent writes can still
// both store the same value.
package users

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lmacedo/biblioteca/internal/entities"
	"github.com/lmacedo/biblioteca/internal/textcodec"
)

// Repository handles all patron database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a patron. Candidate emails and phones that collide with
// another patron's stored values are dropped; the rest are stored in the
// order given.
func (r *Repository) CreateUser(name string, emails, phones []string) (*entities.User, error) {
	rawEmails, rawPhones, err := r.encodeContacts(0, emails, phones)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:      textcodec.Escape(name),
		RawEmails: rawEmails,
		RawPhones: rawPhones,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return decode(user)
}

// GetUsers retrieves all patrons, decoded.
func (r *Repository) GetUsers() ([]entities.User, error) {
	var users []entities.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		if _, err := decode(&users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// GetUserByID retrieves a patron by id, decoded. Returns (nil, nil) when no
// such patron exists.
func (r *Repository) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(&user)
}

// UpdateUser replaces a patron's name and contact lists. The uniqueness scan
// excludes the patron's own row, so keeping an existing value is not a
// collision. Returns the number of rows affected.
func (r *Repository) UpdateUser(id uint, name string, emails, phones []string) (int64, error) {
	rawEmails, rawPhones, err := r.encodeContacts(id, emails, phones)
	if err != nil {
		return 0, err
	}

	result := r.db.Model(&entities.User{}).Where("id = ?", id).Updates(map[string]any{
		"name":   textcodec.Escape(name),
		"emails": rawEmails,
		"phones": rawPhones,
	})
	return result.RowsAffected, result.Error
}

// DeleteUser removes a patron by id. Returns the number of rows affected.
func (r *Repository) DeleteUser(id uint) (int64, error) {
	result := r.db.Delete(&entities.User{}, id)
	return result.RowsAffected, result.Error
}

// encodeContacts escapes the candidate lists, drops values already stored
// for other patrons and returns both lists as column-ready JSON text.
// excludeID > 0 leaves that row out of the scan.
func (r *Repository) encodeContacts(excludeID uint, emails, phones []string) (string, string, error) {
	storedEmails, storedPhones, err := r.storedContacts(excludeID)
	if err != nil {
		return "", "", err
	}

	rawEmails, err := textcodec.EncodeList(filterKnown(textcodec.EscapeAll(emails), storedEmails))
	if err != nil {
		return "", "", err
	}
	rawPhones, err := textcodec.EncodeList(filterKnown(textcodec.EscapeAll(phones), storedPhones))
	if err != nil {
		return "", "", err
	}
	return rawEmails, rawPhones, nil
}

// storedContacts flattens every stored (escaped) email and phone value
// across all patrons except excludeID.
func (r *Repository) storedContacts(excludeID uint) ([]string, []string, error) {
	emailQuery := r.db.Model(&entities.User{})
	phoneQuery := r.db.Model(&entities.User{})
	if excludeID != 0 {
		emailQuery = emailQuery.Where("id <> ?", excludeID)
		phoneQuery = phoneQuery.Where("id <> ?", excludeID)
	}

	var rawEmails []string
	if err := emailQuery.Pluck("emails", &rawEmails).Error; err != nil {
		return nil, nil, err
	}
	var rawPhones []string
	if err := phoneQuery.Pluck("phones", &rawPhones).Error; err != nil {
		return nil, nil, err
	}

	var emails []string
	for _, raw := range rawEmails {
		list, err := textcodec.DecodeList(raw)
		if err != nil {
			return nil, nil, err
		}
		emails = append(emails, list...)
	}
	var phones []string
	for _, raw := range rawPhones {
		list, err := textcodec.DecodeList(raw)
		if err != nil {
			return nil, nil, err
		}
		phones = append(phones, list...)
	}
	return emails, phones, nil
}

// filterKnown keeps candidates not present in stored, preserving candidate
// order. Duplicates within the candidate list itself are kept.
func filterKnown(candidates, stored []string) []string {
	taken := make(map[string]struct{}, len(stored))
	for _, v := range stored {
		taken[v] = struct{}{}
	}

	kept := make([]string, 0, len(candidates))
	for _, v := range candidates {
		if _, ok := taken[v]; ok {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

// decode unescapes the name and materializes the contact slices in place.
func decode(user *entities.User) (*entities.User, error) {
	emails, err := textcodec.DecodeList(user.RawEmails)
	if err != nil {
		return nil, err
	}
	phones, err := textcodec.DecodeList(user.RawPhones)
	if err != nil {
		return nil, err
	}

	user.Name = textcodec.Unescape(user.Name)
	user.Emails = textcodec.UnescapeAll(emails)
	user.Phones = textcodec.UnescapeAll(phones)
	return user, nil
}
