package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"buildboard/internal/database"
	"buildboard/internal/domain"
	"buildboard/internal/repository"
)

// Seeds a demo company with users, projects, tasks and a payment schedule.
// Intended for local development against SQLite:
//
//	DATABASE_URL=buildboard.db go run ./cmd/seed
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "buildboard.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed: ", err)
	}

	log.Println("Cleaning old data...")
	for _, table := range []string{
		"notifications", "notification_settings", "payment_receipts",
		"payment_documents", "payment_installments", "payment_schedules",
		"photos", "tasks", "projects", "uploads", "users", "companies",
	} {
		db.Exec("DELETE FROM " + table)
	}

	ctx := context.Background()

	companies := repository.NewCompanyRepository(db)
	users := repository.NewUserRepository(db)
	projects := repository.NewProjectRepository(db)
	tasks := repository.NewTaskRepository(db)
	schedules := repository.NewPaymentScheduleRepository(db)
	installments := repository.NewPaymentInstallmentRepository(db)

	log.Println("Creating company...")
	company := &domain.Company{
		Name:  "Hill Country Builders",
		Email: "office@hillcountrybuilders.com",
		Phone: "+1 512 555 0140",
	}
	must(companies.Create(ctx, company))

	log.Println("Creating users...")
	admin := createUser(ctx, users, company.ID, "admin@hillcountrybuilders.com", "admin123", domain.RoleAdmin, "Dana Whitfield", "")
	manager := createUser(ctx, users, company.ID, "manager@hillcountrybuilders.com", "manager123", domain.RoleManager, "Luis Ortega", "")
	sub := createUser(ctx, users, company.ID, "electric@hillcountrybuilders.com", "sub123", domain.RoleSubcontractor, "Priya Nair", "electrical")
	log.Println("Admin login: admin@hillcountrybuilders.com / admin123")

	log.Println("Creating projects...")
	due := time.Now().AddDate(0, 4, 0)
	duplex := &domain.Project{
		CompanyID:   company.ID,
		Name:        "Riverside Duplex",
		Description: "Two-unit duplex build on Riverside Dr",
		Location:    "Austin, TX",
		Status:      domain.ProjectActive,
		Progress:    35,
		DueDate:     &due,
		BudgetCents: 48_500_000,
		ClientName:  "M. Reyes",
		ClientEmail: "m.reyes@example.com",
		CreatedBy:   admin.ID,
	}
	must(projects.Create(ctx, duplex))

	remodel := &domain.Project{
		CompanyID:   company.ID,
		Name:        "Hill Country Remodel",
		Description: "Kitchen and bath remodel",
		Location:    "Dripping Springs, TX",
		Status:      domain.ProjectOnHold,
		Progress:    10,
		BudgetCents: 9_200_000,
		CreatedBy:   manager.ID,
	}
	must(projects.Create(ctx, remodel))

	log.Println("Creating tasks...")
	soon := time.Now().AddDate(0, 0, 3)
	past := time.Now().AddDate(0, 0, -2)
	seedTasks := []domain.Task{
		{
			CompanyID: company.ID, ProjectID: &duplex.ID, Title: "Pour foundation",
			Category: domain.TaskCategoryProject, Status: domain.TaskCompleted,
			Priority: domain.PriorityHigh, CreatedBy: admin.ID, IsMilestone: true,
		},
		{
			CompanyID: company.ID, ProjectID: &duplex.ID, AssigneeID: &sub.ID,
			Title: "Rough-in electrical", Category: domain.TaskCategorySubcontractor,
			Status: domain.TaskInProgress, Priority: domain.PriorityHigh,
			DueDate: &soon, CreatedBy: manager.ID,
		},
		{
			CompanyID: company.ID, ProjectID: &duplex.ID, Title: "Order windows",
			Category: domain.TaskCategoryProject, Status: domain.TaskPending,
			Priority: domain.PriorityMedium, DueDate: &past, CreatedBy: manager.ID,
		},
		{
			CompanyID: company.ID, Title: "Renew liability insurance",
			Category: domain.TaskCategoryAdministrative, Status: domain.TaskPending,
			Priority: domain.PriorityCritical, CreatedBy: admin.ID,
		},
	}
	for i := range seedTasks {
		must(tasks.Create(ctx, &seedTasks[i]))
	}

	log.Println("Creating payment schedule...")
	sched, _, err := schedules.EnsureForProject(ctx, company.ID, duplex.ID, "Payment Schedule", "Project payment tracking")
	must(err)

	names := []struct {
		name   string
		amount float64
		status domain.InstallmentStatus
		next   bool
	}{
		{"Deposit", 50_000, domain.InstallmentPayable, true},
		{"Framing complete", 120_000, domain.InstallmentPlanned, false},
		{"Dry-in", 90_000, domain.InstallmentPlanned, false},
		{"Final", 225_000, domain.InstallmentPlanned, false},
	}
	for i, n := range names {
		inst := &domain.PaymentInstallment{
			CompanyID:     company.ID,
			ScheduleID:    sched.ID,
			ProjectID:     duplex.ID,
			Name:          n.name,
			Amount:        n.amount,
			Currency:      "USD",
			Status:        n.status,
			NextMilestone: n.next,
			DisplayOrder:  i + 1,
		}
		must(installments.Create(ctx, inst))
	}

	log.Println("Seed complete.")
}

func createUser(ctx context.Context, users *repository.UserRepository, companyID int64, email, password string, role domain.UserRole, name, trade string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	must(err)

	u := &domain.User{
		CompanyID:    companyID,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
		Trade:        trade,
	}
	must(users.Create(ctx, u))
	fmt.Printf("  %s (%s)\n", email, role)
	return u
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
