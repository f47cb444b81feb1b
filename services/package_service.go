package services

import (
	"encoding/json"
	"fmt"
	"log"

	"event-backend/models"

	"gorm.io/gorm"
)

// PackageService exposes the read-only event package catalogue.
type PackageService struct {
	DB *gorm.DB
}

func NewPackageService(db *gorm.DB) *PackageService {
	return &PackageService{DB: db}
}

// PackageView is the wire shape of a package, with WhatIncluded decoded
// from its stored JSON form into a plain string list.
type PackageView struct {
	PackageID    uint     `json:"package_id"`
	PackageName  string   `json:"package_name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	WhatIncluded []string `json:"what_included"`
}

// List returns all packages. A row whose what_included column fails to
// decode is reported with an empty list; the corruption is logged for the
// operator rather than failing the whole request.
func (s *PackageService) List() ([]PackageView, error) {
	var packages []models.EventPackage
	if err := s.DB.Order("id ASC").Find(&packages).Error; err != nil {
		return nil, fmt.Errorf("failed to list event packages: %w", err)
	}

	views := make([]PackageView, 0, len(packages))
	for _, p := range packages {
		included := []string{}
		if len(p.WhatIncluded) > 0 {
			if err := json.Unmarshal(p.WhatIncluded, &included); err != nil {
				log.Printf("⚠️  package %d has corrupt what_included payload: %v", p.ID, err)
				included = []string{}
			}
		}
		views = append(views, PackageView{
			PackageID:    p.ID,
			PackageName:  p.PackageName,
			Description:  p.Description,
			Price:        p.Price,
			WhatIncluded: included,
		})
	}
	return views, nil
}
