package service

import (
	"errors"
	"fmt"

	"lms-backend/internal/models"
	"lms-backend/internal/repository"

	"github.com/google/uuid"
)

// UserService covers administrative user management: listing, profile
// updates, role assignment and deletion.
type UserService struct {
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditRepository
}

func NewUserService(userRepo *repository.UserRepository, auditRepo *repository.AuditRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

// GetAllUsers lists every account
func (s *UserService) GetAllUsers() ([]UserSummary, error) {
	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, summarize(&users[i]))
	}
	return summaries, nil
}

// GetUserByID returns a single account summary
func (s *UserService) GetUserByID(id uuid.UUID) (*UserSummary, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	summary := summarize(user)
	return &summary, nil
}

// UpdateUser updates the editable profile fields of an account
func (s *UserService) UpdateUser(id uuid.UUID, firstName, lastName, email string, adminID uuid.UUID) (*UserSummary, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "user_update", fmt.Sprintf("Updated user %s", id))

	summary := summarize(user)
	return &summary, nil
}

// AssignRole changes a user's role to one of the known role strings
func (s *UserService) AssignRole(id uuid.UUID, role string, adminID uuid.UUID) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "role_assign", fmt.Sprintf("Assigned role %s to user %s", role, id))

	return nil
}

// DeleteUser removes an account and cascades its enrollments
func (s *UserService) DeleteUser(id uuid.UUID, adminID uuid.UUID) error {
	if err := s.userRepo.Delete(id); err != nil {
		return err
	}

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "user_delete", fmt.Sprintf("Deleted user %s", id))

	return nil
}
