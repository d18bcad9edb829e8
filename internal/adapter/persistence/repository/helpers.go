package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const organizationIndex = "organization_id-index"

// Fixed width so lexical comparison in key and filter expressions matches
// chronological order.
const itemTimeLayout = "2006-01-02T15:04:05.000000000Z"

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	dynamodb.QueryAPIClient
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(itemTimeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(itemTimeLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339Nano, s); err != nil {
			return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
		}
	}
	return t.UTC(), nil
}

// timeDecoder parses the time attributes of one item and keeps the first
// failure so converters can report it once.
type timeDecoder struct {
	err error
}

func (d *timeDecoder) at(s string) time.Time {
	t, err := parseTime(s)
	if err != nil && d.err == nil {
		d.err = err
	}
	return t
}

func (d *timeDecoder) ptr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := d.at(s)
	return &t
}

func stringValue(s string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: s}
}

// rangeFilter is the half-open [start, end) condition on a time attribute.
func rangeFilter(attr string, start, end time.Time) (string, map[string]string, map[string]types.AttributeValue) {
	return "#ts >= :start AND #ts < :end",
		map[string]string{"#ts": attr},
		map[string]types.AttributeValue{
			":start": stringValue(formatTime(start)),
			":end":   stringValue(formatTime(end)),
		}
}

func putNew(ctx context.Context, ddb DynamoAPI, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// listOrgItems reads every item of an organization through the
// organization_id GSI, or scans the table when orgID is empty. filter, names
// and values narrow the result server side and may be empty.
func listOrgItems(
	ctx context.Context,
	ddb DynamoAPI,
	table, orgID, filter string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue

	if orgID == "" {
		in := &dynamodb.ScanInput{TableName: aws.String(table)}
		if filter != "" {
			in.FilterExpression = aws.String(filter)
		}
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
		}
		if len(values) > 0 {
			in.ExpressionAttributeValues = values
		}
		p := dynamodb.NewScanPaginator(ddb, in)
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			items = append(items, out.Items...)
		}
		return items, nil
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(organizationIndex),
		KeyConditionExpression:    aws.String("#org = :org"),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#org": "organization_id"}),
		ExpressionAttributeValues: mergeValues(values, map[string]types.AttributeValue{":org": stringValue(orgID)}),
	}
	if filter != "" {
		in.FilterExpression = aws.String(filter)
	}
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
	}
	return items, nil
}

func unmarshalItems[T any, E any](raw []map[string]types.AttributeValue, convert func(T) (E, error)) ([]E, error) {
	out := make([]E, 0, len(raw))
	for _, r := range raw {
		var it T
		if err := attributevalue.UnmarshalMap(r, &it); err != nil {
			return nil, err
		}
		e, err := convert(it)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
