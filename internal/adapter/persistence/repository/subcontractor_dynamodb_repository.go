package repository

import (
	"context"
	"fmt"

	"painting_crm/internal/domain/entities"
	"painting_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubcontractorsTableName = "subcontractors"
	defaultReviewsTableName        = "reviews"
)

type subcontractorItem struct {
	ID             string `dynamodbav:"id"`
	OrganizationID string `dynamodbav:"organization_id"`
	Name           string `dynamodbav:"name"`
	Email          string `dynamodbav:"email,omitempty"`
	Phone          string `dynamodbav:"phone,omitempty"`
	IsActive       bool   `dynamodbav:"is_active"`
	CreatedAt      string `dynamodbav:"created_at"`
}

type reviewItem struct {
	ID              string  `dynamodbav:"id"`
	OrganizationID  string  `dynamodbav:"organization_id"`
	JobID           string  `dynamodbav:"job_id"`
	SubcontractorID *string `dynamodbav:"subcontractor_id,omitempty"`
	Rating          int     `dynamodbav:"rating"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

// SubcontractorDynamoRepository persists Subcontractor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: organization_id-index (PK: organization_id)
type SubcontractorDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISubcontractorRepository = (*SubcontractorDynamoRepository)(nil)

func NewSubcontractorDynamoRepository(ddb DynamoAPI) *SubcontractorDynamoRepository {
	return &SubcontractorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBCONTRACTORS_TABLE", defaultSubcontractorsTableName),
	}
}

func (r *SubcontractorDynamoRepository) Create(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toSubcontractorItem(s)); err != nil {
		return entities.Subcontractor{}, err
	}
	return s, nil
}

func (r *SubcontractorDynamoRepository) ListActive(ctx context.Context, orgID string) ([]entities.Subcontractor, error) {
	raw, err := listOrgItems(ctx, r.ddb, r.tableName, orgID,
		"#is_active = :active",
		map[string]string{"#is_active": "is_active"},
		map[string]types.AttributeValue{":active": &types.AttributeValueMemberBOOL{Value: true}},
	)
	if err != nil {
		return nil, err
	}
	return unmarshalItems[subcontractorItem](raw, fromSubcontractorItem)
}

// ReviewDynamoRepository persists Review entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: organization_id-index (PK: organization_id)
//
// Unattributed reviews are written without a subcontractor_id attribute.
type ReviewDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb DynamoAPI) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toReviewItem(rv)); err != nil {
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) ListAttributed(ctx context.Context, orgID string) ([]entities.Review, error) {
	raw, err := listOrgItems(ctx, r.ddb, r.tableName, orgID,
		"attribute_exists(#sub)",
		map[string]string{"#sub": "subcontractor_id"},
		nil,
	)
	if err != nil {
		return nil, err
	}
	reviews, err := unmarshalItems[reviewItem](raw, fromReviewItem)
	if err != nil {
		return nil, err
	}
	out := reviews[:0]
	for _, rv := range reviews {
		if rv.SubcontractorID != nil && *rv.SubcontractorID != "" {
			out = append(out, rv)
		}
	}
	return out, nil
}

func toSubcontractorItem(s entities.Subcontractor) subcontractorItem {
	return subcontractorItem{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		IsActive:       s.IsActive,
		CreatedAt:      formatTime(s.CreatedAt),
	}
}

func fromSubcontractorItem(it subcontractorItem) (entities.Subcontractor, error) {
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.Subcontractor{}, fmt.Errorf("subcontractor %s: %w", it.ID, err)
	}
	return entities.Subcontractor{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		IsActive:       it.IsActive,
		CreatedAt:      createdAt,
	}, nil
}

func toReviewItem(rv entities.Review) reviewItem {
	it := reviewItem{
		ID:             rv.ID,
		OrganizationID: rv.OrganizationID,
		JobID:          rv.JobID,
		Rating:         rv.Rating,
		CreatedAt:      formatTime(rv.CreatedAt),
	}
	if rv.SubcontractorID != nil && *rv.SubcontractorID != "" {
		id := *rv.SubcontractorID
		it.SubcontractorID = &id
	}
	return it
}

func fromReviewItem(it reviewItem) (entities.Review, error) {
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.Review{}, fmt.Errorf("review %s: %w", it.ID, err)
	}
	return entities.Review{
		ID:              it.ID,
		OrganizationID:  it.OrganizationID,
		JobID:           it.JobID,
		SubcontractorID: it.SubcontractorID,
		Rating:          it.Rating,
		CreatedAt:       createdAt,
	}, nil
}
