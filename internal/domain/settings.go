package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// TenantSettings is the companion configuration record created with every tenant.
type TenantSettings struct {
	OwnerID                    string            `gorm:"primaryKey;type:varchar(12)" json:"owner_id"`
	CleanerPin                 string            `gorm:"type:text" json:"cleaner_pin"`
	HardResetPin               string            `gorm:"type:text" json:"hard_reset_pin"`
	ThemeColor                 string            `gorm:"type:text" json:"theme_color"`
	ThemeMode                  string            `gorm:"type:text" json:"theme_mode"`
	AppLanguage                string            `gorm:"type:text" json:"app_language"`
	HouseRulesTranslations     datatypes.JSONMap `gorm:"type:jsonb" json:"house_rules_translations"`
	WelcomeMessageTranslations datatypes.JSONMap `gorm:"type:jsonb" json:"welcome_message_translations"`
	CleanerChecklist           datatypes.JSON    `gorm:"type:jsonb" json:"cleaner_checklist"`
	AIConcierge                string            `gorm:"type:text" json:"ai_concierge"`
	AIHousekeeper              string            `gorm:"type:text" json:"ai_housekeeper"`
	AITech                     string            `gorm:"type:text" json:"ai_tech"`
	AIGuide                    string            `gorm:"type:text" json:"ai_guide"`
	CheckInTime                string            `gorm:"type:text" json:"check_in_time"`
	CheckOutTime               string            `gorm:"type:text" json:"check_out_time"`
	CreatedAt                  time.Time         `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt                  time.Time         `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (TenantSettings) TableName() string {
	return "tenant_settings"
}

// DefaultTenantSettings returns the settings a freshly created tenant starts with.
func DefaultTenantSettings(ownerID string) *TenantSettings {
	checklist, _ := json.Marshal([]string{"Check bedsheets", "Clean bathroom"})
	return &TenantSettings{
		OwnerID:                    ownerID,
		CleanerPin:                 "0000",
		HardResetPin:               "1234",
		ThemeColor:                 "gold",
		ThemeMode:                  "dark1",
		AppLanguage:                "en",
		HouseRulesTranslations:     datatypes.JSONMap{"en": "No smoking."},
		WelcomeMessageTranslations: datatypes.JSONMap{"en": "Welcome to our Villa!"},
		CleanerChecklist:           datatypes.JSON(checklist),
		CheckInTime:                "15:00",
		CheckOutTime:               "10:00",
	}
}
