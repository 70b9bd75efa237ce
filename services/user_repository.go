package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"futnion_server/apperrors"
	"futnion_server/models"
	"futnion_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserRepository abstracts durable user storage.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}

// DynamoUserRepository stores users in the Users table, with an email GSI for
// lookups during registration and login.
type DynamoUserRepository struct {
	Dynamo *DynamoService
}

func NewDynamoUserRepository(dynamo *DynamoService) *DynamoUserRepository {
	return &DynamoUserRepository{Dynamo: dynamo}
}

func userKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: id},
	}
}

func (r *DynamoUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to create user", err)
	}
	return user, nil
}

func (r *DynamoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	item, err := r.Dynamo.GetItem(ctx, models.UsersTable, userKey(id))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("user %s not found", id))
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to load user", err)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to unmarshal user", err)
	}
	return &user, nil
}

func (r *DynamoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	items, err := r.Dynamo.QueryItemsWithIndex(
		ctx,
		models.UsersTable,
		models.UsersEmailIndex,
		"#email = :email",
		map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: strings.ToLower(strings.TrimSpace(email))},
		},
		map[string]string{"#email": "email"},
		1,
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to query user by email", err)
	}
	if len(items) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("no user with email %s", email))
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to unmarshal user", err)
	}
	return &user, nil
}

func (r *DynamoUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *DynamoUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.Dynamo.ScanWithFilter(ctx, models.UsersTable, nil, &users); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to list users", err)
	}
	return users, nil
}

func (r *DynamoUserRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.User, error) {
	if len(patch) == 0 {
		return r.FindByID(ctx, id)
	}

	setClauses := make([]string, 0, len(patch))
	names := map[string]string{"#userId": "userId"}
	values := map[string]types.AttributeValue{}
	i := 0
	for field, value := range patch {
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to marshal patch value", err)
		}
		name := fmt.Sprintf("#f%d", i)
		placeholder := fmt.Sprintf(":v%d", i)
		names[name] = field
		values[placeholder] = av
		setClauses = append(setClauses, fmt.Sprintf("%s = %s", name, placeholder))
		i++
	}

	attrs, err := r.Dynamo.UpdateItem(
		ctx,
		models.UsersTable,
		"SET "+strings.Join(setClauses, ", "),
		"attribute_exists(#userId)",
		userKey(utils.NormalizeID(id)),
		values,
		names,
	)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("user %s not found", id))
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to update user", err)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(attrs, &user); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to unmarshal user", err)
	}
	return &user, nil
}

func (r *DynamoUserRepository) Delete(ctx context.Context, id string) (*models.User, error) {
	attrs, err := r.Dynamo.DeleteItem(ctx, models.UsersTable, userKey(id))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("user %s not found", id))
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to delete user", err)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(attrs, &user); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to unmarshal user", err)
	}
	return &user, nil
}
