package main

import (
	"fmt"
	"log"
	"os"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/infrastructure/database"
	"github.com/workhub-team/workhub/pkg/config"
	pkgjwt "github.com/workhub-team/workhub/pkg/jwt"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrations()
		return
	}

	log.Println("🚀 Starting test workspace seeding...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("✅ Database connected successfully")

	// Initialize JWT manager
	jwtManager := pkgjwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	const workspaceID = "ws-dev"

	// Define test members, one per role
	testMembers := []struct {
		UID    string
		Name   string
		Handle string
		Email  string
		Role   entities.MemberRole
	}{
		{UID: "u-alice", Name: "Alice", Handle: "alice", Email: "alice@test.local", Role: entities.MemberRoleAdmin},
		{UID: "u-bob", Name: "Bob", Handle: "bob", Email: "bob@test.local", Role: entities.MemberRoleEditor},
		{UID: "u-charlie", Name: "Charlie", Handle: "charlie", Email: "charlie@test.local", Role: entities.MemberRoleEditor},
		{UID: "u-diana", Name: "Diana", Handle: "diana", Email: "diana@test.local", Role: entities.MemberRoleViewer},
	}

	log.Println("🗑️  Cleaning up existing test members...")
	db.Where("workspace_id = ?", workspaceID).Delete(&entities.WorkspaceMember{})

	log.Println("🔑 Creating test members and tokens...")

	for i, tm := range testMembers {
		member := &entities.WorkspaceMember{
			WorkspaceID: workspaceID,
			UID:         tm.UID,
			DisplayName: tm.Name,
			Handle:      tm.Handle,
			Role:        tm.Role,
		}

		if err := db.Create(member).Error; err != nil {
			log.Printf("❌ Failed to create member %s: %v", tm.Handle, err)
			continue
		}

		accessToken, err := jwtManager.GenerateAccessToken(tm.UID, tm.Email)
		if err != nil {
			log.Printf("❌ Failed to generate access token for %s: %v", tm.Handle, err)
			continue
		}

		fmt.Printf("═══════════════════════════════════════════════════════\n")
		fmt.Printf("🟢 Member %d: %s (@%s, %s)\n", i+1, tm.Name, tm.Handle, tm.Role)
		fmt.Printf("🔐 Access Token (expiry %v):\n%s\n", cfg.JWT.AccessExpiry, accessToken)
	}

	fmt.Printf("═══════════════════════════════════════════════════════\n")
	log.Printf("✅ Seeded workspace %q with %d members", workspaceID, len(testMembers))
}
