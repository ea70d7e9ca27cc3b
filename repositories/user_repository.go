package repositories

import (
	"errors"

	"github.com/mahimathinakaran/wastewise/models"
	"github.com/mahimathinakaran/wastewise/utils"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Register creates a user with a hashed password. The email uniqueness check
// runs twice: a lookup for the common case, and the database unique index for
// two registrations racing on the same email.
func (r *UserRepository) Register(name, email, password, role string) (*models.User, error) {
	var existing models.User
	if err := r.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, models.ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
	}

	if err := r.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate checks credentials and the requested role. Logging in as admin
// against a user account is rejected even with the correct password.
func (r *UserRepository) Authenticate(email, password, role string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(password, user.Password) {
		return nil, models.ErrInvalidCredentials
	}

	if user.Role != role {
		return nil, models.ErrRoleMismatch
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile merges the provided name and/or email into the user record.
// Empty strings mean "leave unchanged"; at least one field is required.
func (r *UserRepository) UpdateProfile(id uint, name, email string) (*models.User, error) {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if email != "" {
		var other models.User
		err := r.DB.Where("email = ? AND id <> ?", email, id).First(&other).Error
		if err == nil {
			return nil, models.ErrDuplicateEmail
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["email"] = email
	}
	if len(updates) == 0 {
		return nil, models.ErrNoFields
	}

	user, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.DB.Model(user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

// UpdatePassword re-hashes and stores the new password after verifying the
// current one.
func (r *UserRepository) UpdatePassword(id uint, currentPassword, newPassword string) error {
	user, err := r.FindByID(id)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(currentPassword, user.Password) {
		return models.ErrInvalidCurrentPassword
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return r.DB.Model(user).Update("password", hashed).Error
}
