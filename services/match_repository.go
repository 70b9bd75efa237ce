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

// MatchRepository abstracts durable match storage. "Not found" is a
// distinguishable outcome (NOT_FOUND), never an empty success.
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) (*models.Match, error)
	FindByID(ctx context.Context, id string) (*models.Match, error)
	FindAll(ctx context.Context) ([]models.Match, error)
	FindByCreator(ctx context.Context, userID string) ([]models.Match, error)
	FindByParticipant(ctx context.Context, userID string) ([]models.Match, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Match, error)
	// UpdateParticipants writes the full participant set, but only if the
	// stored version still equals expectedVersion. A lost race returns
	// CONCURRENT_MODIFICATION so the caller can re-read and retry.
	UpdateParticipants(ctx context.Context, id string, participants []string, expectedVersion int64) (*models.Match, error)
	Delete(ctx context.Context, id string) (*models.Match, error)
}

// DynamoMatchRepository stores matches in the Matches table.
type DynamoMatchRepository struct {
	Dynamo *DynamoService
}

func NewDynamoMatchRepository(dynamo *DynamoService) *DynamoMatchRepository {
	return &DynamoMatchRepository{Dynamo: dynamo}
}

func matchKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: id},
	}
}

func (r *DynamoMatchRepository) Create(ctx context.Context, match *models.Match) (*models.Match, error) {
	if err := r.Dynamo.PutItem(ctx, models.MatchesTable, match); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to create match", err)
	}
	return match, nil
}

func (r *DynamoMatchRepository) FindByID(ctx context.Context, id string) (*models.Match, error) {
	item, err := r.Dynamo.GetItem(ctx, models.MatchesTable, matchKey(id))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("match %s not found", id))
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to load match", err)
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to unmarshal match", err)
	}
	return &match, nil
}

func (r *DynamoMatchRepository) FindAll(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	if err := r.Dynamo.ScanWithFilter(ctx, models.MatchesTable, nil, &matches); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to list matches", err)
	}
	return matches, nil
}

func (r *DynamoMatchRepository) FindByCreator(ctx context.Context, userID string) ([]models.Match, error) {
	normalized := utils.NormalizeID(userID)
	var matches []models.Match
	err := r.Dynamo.ScanWithFilter(ctx, models.MatchesTable, func(item map[string]types.AttributeValue) bool {
		creator, ok := item["creatorId"].(*types.AttributeValueMemberS)
		return ok && utils.NormalizeID(creator.Value) == normalized
	}, &matches)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to list matches by creator", err)
	}
	return matches, nil
}

func (r *DynamoMatchRepository) FindByParticipant(ctx context.Context, userID string) ([]models.Match, error) {
	normalized := utils.NormalizeID(userID)
	var matches []models.Match
	err := r.Dynamo.ScanWithFilter(ctx, models.MatchesTable, func(item map[string]types.AttributeValue) bool {
		participants, ok := item["participants"].(*types.AttributeValueMemberL)
		if !ok {
			return false
		}
		for _, p := range participants.Value {
			if s, ok := p.(*types.AttributeValueMemberS); ok && utils.NormalizeID(s.Value) == normalized {
				return true
			}
		}
		return false
	}, &matches)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to list matches by participant", err)
	}
	return matches, nil
}

func (r *DynamoMatchRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Match, error) {
	if len(patch) == 0 {
		return r.FindByID(ctx, id)
	}

	setClauses := make([]string, 0, len(patch))
	names := map[string]string{"#matchId": "matchId"}
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
		models.MatchesTable,
		"SET "+strings.Join(setClauses, ", "),
		"attribute_exists(#matchId)",
		matchKey(id),
		values,
		names,
	)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("match %s not found", id))
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to update match", err)
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(attrs, &match); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to unmarshal match", err)
	}
	return &match, nil
}

func (r *DynamoMatchRepository) UpdateParticipants(ctx context.Context, id string, participants []string, expectedVersion int64) (*models.Match, error) {
	participantsAttr, err := attributevalue.Marshal(participants)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to marshal participants", err)
	}

	attrs, err := r.Dynamo.UpdateItem(
		ctx,
		models.MatchesTable,
		"SET #participants = :participants, #version = :newVersion",
		"#version = :expectedVersion",
		matchKey(id),
		map[string]types.AttributeValue{
			":participants":    participantsAttr,
			":newVersion":      &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion+1)},
			":expectedVersion": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
		},
		map[string]string{
			"#participants": "participants",
			"#version":      "version",
		},
	)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, apperrors.New(apperrors.CodeConcurrentModification, fmt.Sprintf("match %s was modified concurrently", id))
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to update participants", err)
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(attrs, &match); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to unmarshal match", err)
	}
	return &match, nil
}

func (r *DynamoMatchRepository) Delete(ctx context.Context, id string) (*models.Match, error) {
	attrs, err := r.Dynamo.DeleteItem(ctx, models.MatchesTable, matchKey(id))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("match %s not found", id))
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to delete match", err)
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(attrs, &match); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to unmarshal match", err)
	}
	return &match, nil
}
