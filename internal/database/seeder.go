package database

import (
	"log"

	"attendance-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll membuat empat akun kanonik: OWNER dan MANAGER di Pusat,
// SPV dan STAFF di Jakbar. Idempotent lewat FirstOrCreate.
func SeedAll(db *gorm.DB) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.DefaultCost)

	accounts := []model.Employee{
		{Username: "owner", FullName: "Big Boss", Role: model.RoleOwner, Branch: "Pusat", Password: string(hashedPassword), IsApproved: true},
		{Username: "manager", FullName: "General Manager", Role: model.RoleManager, Branch: "Pusat", Password: string(hashedPassword), IsApproved: true},
		{Username: "spv_jakbar", FullName: "SPV Jakarta Barat", Role: model.RoleSupervisor, Branch: "Jakbar", Password: string(hashedPassword), IsApproved: true},
		{Username: "maryam", FullName: "Maryam", Role: model.RoleStaff, Branch: "Jakbar", Password: string(hashedPassword), IsApproved: true},
	}

	for _, account := range accounts {
		db.FirstOrCreate(&account, model.Employee{Username: account.Username})
	}

	log.Println("Seeding selesai! Login: owner / 123")
}
