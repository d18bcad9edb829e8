package repository

import (
	"context"
	"fmt"

	"painting_crm/internal/domain/entities"
	"painting_crm/internal/usecase/interfaces"
)

const (
	defaultLeadsTableName      = "leads"
	defaultLeadEventsTableName = "lead_events"
)

type leadItem struct {
	ID             string  `dynamodbav:"id"`
	OrganizationID string  `dynamodbav:"organization_id"`
	Name           string  `dynamodbav:"name"`
	Email          string  `dynamodbav:"email,omitempty"`
	Phone          string  `dynamodbav:"phone,omitempty"`
	Address        string  `dynamodbav:"address,omitempty"`
	Source         string  `dynamodbav:"source,omitempty"`
	Status         string  `dynamodbav:"status"`
	EstimatedValue float64 `dynamodbav:"estimated_value"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

type leadEventItem struct {
	ID             string `dynamodbav:"id"`
	OrganizationID string `dynamodbav:"organization_id"`
	LeadID         string `dynamodbav:"lead_id"`
	EventType      string `dynamodbav:"event_type"`
	Channel        string `dynamodbav:"channel,omitempty"`
	OccurredAt     string `dynamodbav:"occurred_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: organization_id-index (PK: organization_id)
type LeadDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb DynamoAPI) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toLeadItem(l)); err != nil {
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) ListCreatedBetween(ctx context.Context, orgID string, dr entities.DateRange) ([]entities.Lead, error) {
	filter, names, values := rangeFilter("created_at", dr.Start, dr.End)
	raw, err := listOrgItems(ctx, r.ddb, r.tableName, orgID, filter, names, values)
	if err != nil {
		return nil, err
	}
	return unmarshalItems[leadItem](raw, fromLeadItem)
}

func (r *LeadDynamoRepository) ListAll(ctx context.Context, orgID string) ([]entities.Lead, error) {
	raw, err := listOrgItems(ctx, r.ddb, r.tableName, orgID, "", nil, nil)
	if err != nil {
		return nil, err
	}
	return unmarshalItems[leadItem](raw, fromLeadItem)
}

// LeadEventDynamoRepository stores the lead attribution log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: organization_id-index (PK: organization_id)
type LeadEventDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILeadEventRepository = (*LeadEventDynamoRepository)(nil)

func NewLeadEventDynamoRepository(ddb DynamoAPI) *LeadEventDynamoRepository {
	return &LeadEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEAD_EVENTS_TABLE", defaultLeadEventsTableName),
	}
}

func (r *LeadEventDynamoRepository) Create(ctx context.Context, e entities.LeadEvent) (entities.LeadEvent, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toLeadEventItem(e)); err != nil {
		return entities.LeadEvent{}, err
	}
	return e, nil
}

func (r *LeadEventDynamoRepository) ListByTypeBetween(ctx context.Context, orgID string, eventType entities.LeadEventType, dr entities.DateRange) ([]entities.LeadEvent, error) {
	filter, names, values := rangeFilter("occurred_at", dr.Start, dr.End)
	filter += " AND #event_type = :event_type"
	names["#event_type"] = "event_type"
	values[":event_type"] = stringValue(string(eventType))

	raw, err := listOrgItems(ctx, r.ddb, r.tableName, orgID, filter, names, values)
	if err != nil {
		return nil, err
	}
	return unmarshalItems[leadEventItem](raw, fromLeadEventItem)
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:             l.ID,
		OrganizationID: l.OrganizationID,
		Name:           l.Name,
		Email:          l.Email,
		Phone:          l.Phone,
		Address:        l.Address,
		Source:         l.Source,
		Status:         string(l.Status),
		EstimatedValue: l.EstimatedValue,
		CreatedAt:      formatTime(l.CreatedAt),
		UpdatedAt:      formatTime(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) (entities.Lead, error) {
	var d timeDecoder
	l := entities.Lead{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		Address:        it.Address,
		Source:         it.Source,
		Status:         entities.LeadStatus(it.Status),
		EstimatedValue: it.EstimatedValue,
		CreatedAt:      d.at(it.CreatedAt),
		UpdatedAt:      d.at(it.UpdatedAt),
	}
	if d.err != nil {
		return entities.Lead{}, fmt.Errorf("lead %s: %w", it.ID, d.err)
	}
	return l, nil
}

func toLeadEventItem(e entities.LeadEvent) leadEventItem {
	return leadEventItem{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		LeadID:         e.LeadID,
		EventType:      string(e.EventType),
		Channel:        e.Channel,
		OccurredAt:     formatTime(e.OccurredAt),
	}
}

func fromLeadEventItem(it leadEventItem) (entities.LeadEvent, error) {
	occurredAt, err := parseTime(it.OccurredAt)
	if err != nil {
		return entities.LeadEvent{}, fmt.Errorf("lead event %s: %w", it.ID, err)
	}
	return entities.LeadEvent{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		LeadID:         it.LeadID,
		EventType:      entities.LeadEventType(it.EventType),
		Channel:        it.Channel,
		OccurredAt:     occurredAt,
	}, nil
}
