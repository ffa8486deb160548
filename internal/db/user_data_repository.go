package db

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/pocketlove/internal/models"
	"gorm.io/gorm"
)

// UserDataRepository stores the whole profile aggregate. Derived cycle
// predictions are not stored; Load returns only the period history inside
// CycleStats and callers recompute the rest.
type UserDataRepository struct {
	database *gorm.DB
}

func NewUserDataRepository(database *gorm.DB) *UserDataRepository {
	return &UserDataRepository{database: database}
}

// Load reads the aggregate inside one transaction so it never observes a
// half-applied Save.
func (repo *UserDataRepository) Load() (models.UserData, bool, error) {
	var (
		data  models.UserData
		found bool
	)
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var err error
		data, found, err = loadUserData(tx)
		return err
	})
	if err != nil {
		return models.UserData{}, false, err
	}
	return data, found, nil
}

func loadUserData(tx *gorm.DB) (models.UserData, bool, error) {
	user, found, err := NewUserRepository(tx).FindOwner()
	if err != nil {
		return models.UserData{}, false, fmt.Errorf("load owner: %w", err)
	}
	if !found {
		return models.UserData{}, false, nil
	}

	data := models.UserData{
		ID:           user.PublicID,
		Name:         user.Name,
		Preferences:  user.Preferences,
		PasscodeHash: user.PasscodeHash,
		CycleStats: models.CycleStats{
			PeriodHistory: []models.PeriodEntry{},
		},
		LoveMeter:         []models.LoveLog{},
		SpecialDates:      []models.SpecialDate{},
		Journal:           []models.JournalEntry{},
		TimePassedEntries: []models.TimePassedEntry{},
	}

	if err := listByUser(tx, user.ID, &data.CycleStats.PeriodHistory); err != nil {
		return models.UserData{}, false, fmt.Errorf("load period entries: %w", err)
	}
	if err := listByUser(tx, user.ID, &data.LoveMeter); err != nil {
		return models.UserData{}, false, fmt.Errorf("load love logs: %w", err)
	}
	if err := listByUser(tx, user.ID, &data.SpecialDates); err != nil {
		return models.UserData{}, false, fmt.Errorf("load special dates: %w", err)
	}
	if err := listByUser(tx, user.ID, &data.Journal); err != nil {
		return models.UserData{}, false, fmt.Errorf("load journal: %w", err)
	}
	if err := listByUser(tx, user.ID, &data.TimePassedEntries); err != nil {
		return models.UserData{}, false, fmt.Errorf("load time passed entries: %w", err)
	}

	return data, true, nil
}

// Save writes the aggregate, replacing every child list in one transaction.
func (repo *UserDataRepository) Save(data models.UserData) error {
	if data.ID == "" {
		return errors.New("user data has no id")
	}

	return repo.database.Transaction(func(tx *gorm.DB) error {
		user := models.User{}
		result := tx.Where("public_id = ?", data.ID).Limit(1).Find(&user)
		if result.Error != nil {
			return fmt.Errorf("find user: %w", result.Error)
		}
		user.PublicID = data.ID
		user.Name = data.Name
		user.PasscodeHash = data.PasscodeHash
		user.Preferences = data.Preferences
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("save user: %w", err)
		}

		periods := make([]models.PeriodEntry, len(data.CycleStats.PeriodHistory))
		for index, entry := range data.CycleStats.PeriodHistory {
			entry.ID, entry.UserID, entry.Position = 0, user.ID, index
			periods[index] = entry
		}
		loveLogs := make([]models.LoveLog, len(data.LoveMeter))
		for index, entry := range data.LoveMeter {
			entry.ID, entry.UserID, entry.Position = 0, user.ID, index
			loveLogs[index] = entry
		}
		specialDates := make([]models.SpecialDate, len(data.SpecialDates))
		for index, entry := range data.SpecialDates {
			entry.UserID, entry.Position = user.ID, index
			specialDates[index] = entry
		}
		journal := make([]models.JournalEntry, len(data.Journal))
		for index, entry := range data.Journal {
			entry.UserID, entry.Position = user.ID, index
			journal[index] = entry
		}
		milestones := make([]models.TimePassedEntry, len(data.TimePassedEntries))
		for index, entry := range data.TimePassedEntries {
			entry.UserID, entry.Position = user.ID, index
			milestones[index] = entry
		}

		if err := replaceChildren(tx, user.ID, &models.PeriodEntry{}, periods); err != nil {
			return fmt.Errorf("save period entries: %w", err)
		}
		if err := replaceChildren(tx, user.ID, &models.LoveLog{}, loveLogs); err != nil {
			return fmt.Errorf("save love logs: %w", err)
		}
		if err := replaceChildren(tx, user.ID, &models.SpecialDate{}, specialDates); err != nil {
			return fmt.Errorf("save special dates: %w", err)
		}
		if err := replaceChildren(tx, user.ID, &models.JournalEntry{}, journal); err != nil {
			return fmt.Errorf("save journal: %w", err)
		}
		if err := replaceChildren(tx, user.ID, &models.TimePassedEntry{}, milestones); err != nil {
			return fmt.Errorf("save time passed entries: %w", err)
		}
		return nil
	})
}

// Clear removes every profile and its data.
func (repo *UserDataRepository) Clear() error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{
			&models.PeriodEntry{},
			&models.LoveLog{},
			&models.SpecialDate{},
			&models.JournalEntry{},
			&models.TimePassedEntry{},
			&models.User{},
		} {
			if err := global.Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func listByUser(tx *gorm.DB, userID uint, destination any) error {
	return tx.Where("user_id = ?", userID).Order("position ASC, id ASC").Find(destination).Error
}

func replaceChildren[T any](tx *gorm.DB, userID uint, model *T, rows []T) error {
	if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
