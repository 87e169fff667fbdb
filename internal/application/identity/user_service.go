package identity

import (
	"context"

	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserService handles the administrative user surface
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List retrieves users matching the filter
func (s *UserService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserResponse], error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *ToUserResponse(&users[i]))
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = len(responses)
		if pageSize == 0 {
			pageSize = 1
		}
	}
	result := shared.NewPaginated(responses, total, page, pageSize)
	return &result, nil
}

// ChangeRole moves a user to a new role. Changing your own role is
// rejected so an administrator cannot lock themselves out mid-session.
func (s *UserService) ChangeRole(ctx context.Context, actorID, userID uuid.UUID, role string) (*UserResponse, error) {
	if actorID == userID {
		return nil, shared.NewDomainError("INVALID_INPUT", "Cannot change your own role")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.ChangeRole(identity.Role(role)); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

// Delete removes a user account. Protected accounts and self-deletion
// are rejected.
func (s *UserService) Delete(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return shared.NewDomainError("INVALID_INPUT", "Cannot delete your own account")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.EnsureDeletable(); err != nil {
		return err
	}

	return s.userRepo.Delete(ctx, user.ID)
}
