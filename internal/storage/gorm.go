package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/models"
)

// Record types mirror the relational schema: snake_case columns and
// time.Time timestamps. The mapping to the camelCase, epoch-millis
// entity shapes happens in this file and nowhere else.

type userRecord struct {
	ID           string  `gorm:"primarykey;type:varchar(36)"`
	Email        *string `gorm:"type:varchar(255);uniqueIndex"`
	DisplayName  string  `gorm:"column:display_name;type:varchar(255);not null"`
	PhotoURL     string  `gorm:"column:photo_url;type:varchar(512)"`
	AccountType  string  `gorm:"column:account_type;type:varchar(20);not null"`
	PasswordHash string  `gorm:"column:password_hash;type:varchar(255)"`
	CreatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

type dreamRecord struct {
	ID          string `gorm:"primarykey;type:varchar(36)"`
	UserID      string `gorm:"column:user_id;type:varchar(36);not null;index"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(20);not null"`
	Horizon     string `gorm:"type:varchar(20);not null"`
	IsArchived  bool   `gorm:"column:is_archived;not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (dreamRecord) TableName() string { return "dreams" }

type goalRecord struct {
	ID        string `gorm:"primarykey;type:varchar(36)"`
	DreamID   string `gorm:"column:dream_id;type:varchar(36);not null;index"`
	UserID    string `gorm:"column:user_id;type:varchar(36);not null;index"`
	Title     string `gorm:"not null"`
	Status    string `gorm:"type:varchar(20);not null"`
	Progress  int    `gorm:"not null;default:0"`
	Deadline  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (goalRecord) TableName() string { return "goals" }

type logRecord struct {
	ID        string    `gorm:"primarykey;type:varchar(36)"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	Date      time.Time `gorm:"index"`
	CreatedAt time.Time
}

func (logRecord) TableName() string { return "action_logs" }

// GormStore is the relational backend, usable with MySQL or Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an existing gorm connection. Callers own migration
// (see AutoMigrate); tests pass an in-memory SQLite handle here.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// OpenGorm connects to the configured database and migrates the schema.
func OpenGorm(cfg *config.Config) (*GormStore, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		dial = postgres.Open(dsn)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dial = mysql.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := NewGormStore(db)
	if err := s.AutoMigrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// AutoMigrate creates or updates the backing tables.
func (s *GormStore) AutoMigrate() error {
	if err := s.db.AutoMigrate(&userRecord{}, &dreamRecord{}, &goalRecord{}, &logRecord{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func translateGormErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func millisToTimePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}

func timePtrToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func userToRecord(u *models.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		PhotoURL:     u.PhotoURL,
		AccountType:  string(u.AccountType),
		PasswordHash: u.PasswordHash,
		CreatedAt:    millisToTime(u.CreatedAt),
	}
}

func userFromRecord(r userRecord) models.User {
	return models.User{
		ID:           r.ID,
		Email:        r.Email,
		DisplayName:  r.DisplayName,
		PhotoURL:     r.PhotoURL,
		AccountType:  models.AccountType(r.AccountType),
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UnixMilli(),
	}
}

func dreamFromRecord(r dreamRecord) models.Dream {
	return models.Dream{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Category:    models.DreamCategory(r.Category),
		Horizon:     models.TimeHorizon(r.Horizon),
		IsArchived:  r.IsArchived,
		CreatedAt:   r.CreatedAt.UnixMilli(),
		UpdatedAt:   r.UpdatedAt.UnixMilli(),
	}
}

func goalFromRecord(r goalRecord) models.Goal {
	return models.Goal{
		ID:        r.ID,
		DreamID:   r.DreamID,
		UserID:    r.UserID,
		Title:     r.Title,
		Status:    models.GoalStatus(r.Status),
		Progress:  r.Progress,
		Deadline:  timePtrToMillis(r.Deadline),
		CreatedAt: r.CreatedAt.UnixMilli(),
		UpdatedAt: r.UpdatedAt.UnixMilli(),
	}
}

func logFromRecord(r logRecord) models.ActionLog {
	return models.ActionLog{
		ID:        r.ID,
		UserID:    r.UserID,
		Content:   r.Content,
		Date:      r.Date.UnixMilli(),
		CreatedAt: r.CreatedAt.UnixMilli(),
	}
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var rec userRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translateGormErr(err)
	}
	u := userFromRecord(rec)
	return &u, nil
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var rec userRecord
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&rec).Error; err != nil {
		return nil, translateGormErr(err)
	}
	u := userFromRecord(rec)
	return &u, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) (string, error) {
	user.ID = uuid.NewString()
	user.CreatedAt = nowMillis()

	rec := userToRecord(user)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", err
	}
	return user.ID, nil
}

func (s *GormStore) ListDreams(ctx context.Context, userID string) ([]models.Dream, error) {
	var recs []dreamRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	dreams := make([]models.Dream, len(recs))
	for i, r := range recs {
		dreams[i] = dreamFromRecord(r)
	}
	return dreams, nil
}

func (s *GormStore) CreateDream(ctx context.Context, dream *models.Dream) (string, error) {
	now := nowMillis()
	dream.ID = uuid.NewString()
	dream.CreatedAt = now
	dream.UpdatedAt = now

	rec := dreamRecord{
		ID:          dream.ID,
		UserID:      dream.UserID,
		Title:       dream.Title,
		Description: dream.Description,
		Category:    string(dream.Category),
		Horizon:     string(dream.Horizon),
		IsArchived:  dream.IsArchived,
		CreatedAt:   millisToTime(now),
		UpdatedAt:   millisToTime(now),
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", err
	}
	return dream.ID, nil
}

func (s *GormStore) UpdateDream(ctx context.Context, id string, upd DreamUpdate) error {
	var rec dreamRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return translateGormErr(err)
	}

	if upd.Title != nil {
		rec.Title = *upd.Title
	}
	if upd.Description != nil {
		rec.Description = *upd.Description
	}
	if upd.Category != nil {
		rec.Category = string(*upd.Category)
	}
	if upd.Horizon != nil {
		rec.Horizon = string(*upd.Horizon)
	}
	if upd.IsArchived != nil {
		rec.IsArchived = *upd.IsArchived
	}
	rec.UpdatedAt = millisToTime(nowMillis())
	return s.db.WithContext(ctx).Save(&rec).Error
}

func (s *GormStore) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	var recs []goalRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	goals := make([]models.Goal, len(recs))
	for i, r := range recs {
		goals[i] = goalFromRecord(r)
	}
	return goals, nil
}

func (s *GormStore) CreateGoal(ctx context.Context, goal *models.Goal) (string, error) {
	now := nowMillis()
	goal.ID = uuid.NewString()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	rec := goalRecord{
		ID:        goal.ID,
		DreamID:   goal.DreamID,
		UserID:    goal.UserID,
		Title:     goal.Title,
		Status:    string(goal.Status),
		Progress:  goal.Progress,
		Deadline:  millisToTimePtr(goal.Deadline),
		CreatedAt: millisToTime(now),
		UpdatedAt: millisToTime(now),
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", err
	}
	return goal.ID, nil
}

func (s *GormStore) UpdateGoal(ctx context.Context, id string, upd GoalUpdate) error {
	var rec goalRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return translateGormErr(err)
	}

	if upd.Title != nil {
		rec.Title = *upd.Title
	}
	if upd.Status != nil {
		rec.Status = string(*upd.Status)
	}
	if upd.Progress != nil {
		rec.Progress = *upd.Progress
	}
	if upd.ClearDeadline {
		rec.Deadline = nil
	} else if upd.Deadline != nil {
		rec.Deadline = millisToTimePtr(upd.Deadline)
	}
	rec.UpdatedAt = millisToTime(nowMillis())
	return s.db.WithContext(ctx).Save(&rec).Error
}

func (s *GormStore) ListLogs(ctx context.Context, userID string) ([]models.ActionLog, error) {
	var recs []logRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	logs := make([]models.ActionLog, len(recs))
	for i, r := range recs {
		logs[i] = logFromRecord(r)
	}
	return logs, nil
}

func (s *GormStore) CreateLog(ctx context.Context, log *models.ActionLog) (string, error) {
	log.ID = uuid.NewString()
	log.CreatedAt = nowMillis()
	if log.Date == 0 {
		log.Date = log.CreatedAt
	}

	rec := logRecord{
		ID:        log.ID,
		UserID:    log.UserID,
		Content:   log.Content,
		Date:      millisToTime(log.Date),
		CreatedAt: millisToTime(log.CreatedAt),
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", err
	}
	return log.ID, nil
}
