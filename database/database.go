package database

import (
	"gorm.io/gorm"
)

type Database struct {
	portfolioRepo *PortfolioRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		portfolioRepo: NewPortfolioRepo(db),
	}
}

func (d Database) PortfolioRepo() *PortfolioRepo {
	return d.portfolioRepo
}
