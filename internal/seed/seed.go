// Package seed loads bootstrap data (condominiums, an administrator and the
// global NBR checklist templates) from a YAML file. Loading is idempotent:
// rows that already exist are left untouched.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"condo-maintenance-backend/internal/database/models"
	"condo-maintenance-backend/internal/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Hasher hashes the seeded users' passwords
type Hasher interface {
	HashPassword(password string) (string, error)
}

type CondominiumData struct {
	Name       string `yaml:"nome"`
	TaxID      string `yaml:"cnpj,omitempty"`
	Address    string `yaml:"endereco,omitempty"`
	City       string `yaml:"cidade,omitempty"`
	State      string `yaml:"estado,omitempty"`
	PostalCode string `yaml:"cep,omitempty"`
}

type LinkData struct {
	Condominium string `yaml:"condominio"`
	Role        string `yaml:"papel"`
	Principal   bool   `yaml:"principal,omitempty"`
}

type UserData struct {
	Email      string     `yaml:"email"`
	Name       string     `yaml:"nome"`
	Password   string     `yaml:"senha"`
	GlobalRole string     `yaml:"role,omitempty"`
	Links      []LinkData `yaml:"vinculos,omitempty"`
}

type TemplateData struct {
	Name       string   `yaml:"nome"`
	NBR        string   `yaml:"nbr"`
	Category   string   `yaml:"categoria,omitempty"`
	PeriodDays int      `yaml:"periodicidade_dias"`
	Items      []string `yaml:"itens,omitempty"`
}

// Data is the whole seed document
type Data struct {
	Condominiums []CondominiumData `yaml:"condominios"`
	Users        []UserData        `yaml:"usuarios"`
	Templates    []TemplateData    `yaml:"templates"`
}

// Result counts the rows created by Apply
type Result struct {
	Condominiums int
	Users        int
	Links        int
	Templates    int
}

// LoadFile reads and validates a seed document
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a seed document and checks its references
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *Data) validate() error {
	names := make(map[string]bool, len(d.Condominiums))
	for _, c := range d.Condominiums {
		if strings.TrimSpace(c.Name) == "" {
			return errors.New("condominium without a name")
		}
		names[c.Name] = true
	}
	for _, u := range d.Users {
		if u.Email == "" || u.Password == "" {
			return fmt.Errorf("user %q needs an email and a password", u.Email)
		}
		for _, l := range u.Links {
			if !names[l.Condominium] {
				return fmt.Errorf("user %s links unknown condominium %q", u.Email, l.Condominium)
			}
			if !models.Role(l.Role).IsValid() {
				return fmt.Errorf("user %s has unknown role %q", u.Email, l.Role)
			}
		}
	}
	for _, t := range d.Templates {
		if t.Name == "" || t.PeriodDays <= 0 {
			return fmt.Errorf("template %q needs a name and a positive period", t.Name)
		}
	}
	return nil
}

// Apply writes the document inside one transaction
func Apply(ctx context.Context, db *gorm.DB, hasher Hasher, data *Data) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		condos := make(map[string]*models.Condominium, len(data.Condominiums))
		for _, cd := range data.Condominiums {
			condo, created, err := createCondominium(tx, cd)
			if err != nil {
				return fmt.Errorf("failed to create condominium %s: %w", cd.Name, err)
			}
			condos[cd.Name] = condo
			if created {
				res.Condominiums++
			}
		}

		for _, ud := range data.Users {
			user, created, err := createUser(tx, hasher, ud)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", ud.Email, err)
			}
			if created {
				res.Users++
			}
			for _, ld := range ud.Links {
				created, err := createLink(tx, user, condos[ld.Condominium], ld)
				if err != nil {
					return fmt.Errorf("failed to link %s to %s: %w", ud.Email, ld.Condominium, err)
				}
				if created {
					res.Links++
				}
			}
		}

		for _, td := range data.Templates {
			created, err := createTemplate(tx, td)
			if err != nil {
				return fmt.Errorf("failed to create template %s: %w", td.Name, err)
			}
			if created {
				res.Templates++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"condominios": res.Condominiums,
		"usuarios":    res.Users,
		"vinculos":    res.Links,
		"templates":   res.Templates,
	}).Info("Seed applied")
	return res, nil
}

func createCondominium(tx *gorm.DB, cd CondominiumData) (*models.Condominium, bool, error) {
	var condo models.Condominium
	err := tx.Where("nome = ?", cd.Name).First(&condo).Error
	if err == nil {
		return &condo, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	condo = models.Condominium{
		Name:       cd.Name,
		TaxID:      cd.TaxID,
		Address:    cd.Address,
		City:       cd.City,
		State:      strings.ToUpper(cd.State),
		PostalCode: cd.PostalCode,
	}
	if err := tx.Create(&condo).Error; err != nil {
		return nil, false, err
	}
	return &condo, true, nil
}

func createUser(tx *gorm.DB, hasher Hasher, ud UserData) (*models.UserProfile, bool, error) {
	email := strings.ToLower(strings.TrimSpace(ud.Email))
	var user models.UserProfile
	err := tx.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	hash, err := hasher.HashPassword(ud.Password)
	if err != nil {
		return nil, false, err
	}
	user = models.UserProfile{
		Email:        email,
		Name:         ud.Name,
		PasswordHash: hash,
		GlobalRole:   models.GlobalRole(strings.ToLower(ud.GlobalRole)),
		Active:       true,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createLink(tx *gorm.DB, user *models.UserProfile, condo *models.Condominium, ld LinkData) (bool, error) {
	var existing models.CondominiumLink
	err := tx.Where("usuario_id = ? AND condominio_id = ?", user.ID, condo.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	link := models.CondominiumLink{
		UserID:        user.ID,
		CondominiumID: condo.ID,
		Role:          models.Role(ld.Role).Normalize(),
		IsPrincipal:   ld.Principal,
	}
	return true, tx.Create(&link).Error
}

func createTemplate(tx *gorm.DB, td TemplateData) (bool, error) {
	var existing models.ChecklistTemplate
	err := tx.Where("nome = ? AND condominio_id IS NULL", td.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	items := td.Items
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return false, err
	}
	tpl := models.ChecklistTemplate{
		Name:       td.Name,
		NBR:        td.NBR,
		Category:   td.Category,
		PeriodDays: td.PeriodDays,
		Items:      raw,
	}
	return true, tx.Create(&tpl).Error
}
