package database

import (
	"path/filepath"
	"strings"
	"testing"

	"finanzapp/internal/config"
	"finanzapp/internal/logger"
	"finanzapp/internal/models"
)

func init() {
	logger.Init("test")
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	cfg, err := NewConfig(&config.Config{
		DBDriver: DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "finanzapp.db"),
	})
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Errorf("failed to close manager: %v", err)
		}
	})
	return m
}

func TestBootstrap(t *testing.T) {
	t.Run("creates schema and seeds categories", func(t *testing.T) {
		m := newTestManager(t)

		if err := m.Bootstrap(); err != nil {
			t.Fatalf("bootstrap failed: %v", err)
		}

		for _, table := range []string{"users", "categories", "transactions"} {
			if !m.DB().Migrator().HasTable(table) {
				t.Errorf("table %q should exist after bootstrap", table)
			}
		}

		var categories []models.Category
		if err := m.DB().Order("id").Find(&categories).Error; err != nil {
			t.Fatalf("failed to list categories: %v", err)
		}
		if len(categories) != len(DefaultCategories) {
			t.Fatalf("expected %d categories, got %d", len(DefaultCategories), len(categories))
		}
		for i, cat := range categories {
			want := DefaultCategories[i]
			if cat.Name != want.Name || cat.Type != want.Type || cat.Color != want.Color {
				t.Errorf("category %d: expected %+v, got %+v", i, want, cat)
			}
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		m := newTestManager(t)

		if err := m.Bootstrap(); err != nil {
			t.Fatalf("first bootstrap failed: %v", err)
		}
		if err := m.Bootstrap(); err != nil {
			t.Fatalf("second bootstrap failed: %v", err)
		}

		var count int64
		if err := m.DB().Model(&models.Category{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count categories: %v", err)
		}
		if count != int64(len(DefaultCategories)) {
			t.Errorf("expected %d categories after two runs, got %d", len(DefaultCategories), count)
		}
	})

	t.Run("keeps categories that already exist by name", func(t *testing.T) {
		m := newTestManager(t)
		if err := m.RunMigrations(); err != nil {
			t.Fatalf("migrations failed: %v", err)
		}

		custom := &models.Category{Name: "Food", Type: models.CategoryTypeExpense, Color: "#000000"}
		if err := m.DB().Create(custom).Error; err != nil {
			t.Fatalf("failed to create category: %v", err)
		}

		created, err := SeedDefaultCategories(m.DB())
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if created != len(DefaultCategories)-1 {
			t.Errorf("expected %d new categories, got %d", len(DefaultCategories)-1, created)
		}

		var food models.Category
		if err := m.DB().Where("name = ?", "Food").First(&food).Error; err != nil {
			t.Fatalf("failed to load Food: %v", err)
		}
		if food.Color != "#000000" {
			t.Errorf("existing category should be untouched, got color %s", food.Color)
		}
	})
}

func TestMigratedSchemaMatchesModels(t *testing.T) {
	m := newTestManager(t)
	if err := m.RunMigrations(); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	user := &models.User{Name: "Ana", Email: "ana@example.com", Password: "secret"}
	if err := m.DB().Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	category := &models.Category{Name: "Food", Type: models.CategoryTypeExpense, Color: models.DefaultCategoryColor}
	if err := m.DB().Create(category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	tx := &models.Transaction{Type: models.TransactionTypeExpense, UserID: user.ID, CategoryID: category.ID}
	if err := m.DB().Create(tx).Error; err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	dup := &models.User{Name: "Other", Email: "ana@example.com", Password: "x"}
	if err := m.DB().Create(dup).Error; err == nil {
		t.Error("expected unique email constraint to reject duplicate")
	}

	orphan := &models.Transaction{Type: models.TransactionTypeIncome, UserID: 999, CategoryID: category.ID}
	if err := m.DB().Create(orphan).Error; err == nil {
		t.Error("expected foreign key constraint to reject unknown user")
	}
}

func TestMigrationLifecycle(t *testing.T) {
	m := newTestManager(t)

	version, dirty, err := m.MigrationVersion()
	if err != nil {
		t.Fatalf("version on empty store failed: %v", err)
	}
	if version != 0 || dirty {
		t.Errorf("expected clean version 0, got %d (dirty=%v)", version, dirty)
	}

	if err := m.RunMigrations(); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	if version, _, _ = m.MigrationVersion(); version != 1 {
		t.Errorf("expected version 1 after up, got %d", version)
	}

	if err := m.RollbackMigrations(1); err != nil {
		t.Fatalf("rollback failed: %v", err)
	}
	if m.DB().Migrator().HasTable("transactions") {
		t.Error("transactions table should be dropped after rollback")
	}

	if err := m.RollbackMigrations(0); err == nil {
		t.Error("expected error for zero steps")
	}
}

func TestNewConfig(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		cfg, err := NewConfig(&config.Config{DBDriver: DriverSQLite, DBPath: "data/app.db"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DSN() != "data/app.db?_foreign_keys=on" {
			t.Errorf("unexpected DSN %q", cfg.DSN())
		}
		if cfg.MigrateURL() != "sqlite3://data/app.db" {
			t.Errorf("unexpected migrate URL %q", cfg.MigrateURL())
		}
	})

	t.Run("postgres", func(t *testing.T) {
		cfg, err := NewConfig(&config.Config{
			DBDriver:   DriverPostgres,
			DBHost:     "db",
			DBPort:     "5432",
			DBUser:     "fin",
			DBPassword: "p@ss",
			DBName:     "finanzapp",
			DBSSLMode:  "disable",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(cfg.DSN(), "host=db port=5432 user=fin") {
			t.Errorf("unexpected DSN %q", cfg.DSN())
		}
		want := "postgres://fin:p%40ss@db:5432/finanzapp?sslmode=disable"
		if cfg.MigrateURL() != want {
			t.Errorf("expected %q, got %q", want, cfg.MigrateURL())
		}
	})

	t.Run("unsupported driver", func(t *testing.T) {
		if _, err := NewConfig(&config.Config{DBDriver: "mysql"}); err == nil {
			t.Error("expected error for unsupported driver")
		}
	})

	t.Run("sqlite requires a path", func(t *testing.T) {
		if _, err := NewConfig(&config.Config{DBDriver: DriverSQLite}); err == nil {
			t.Error("expected error for empty path")
		}
	})
}
