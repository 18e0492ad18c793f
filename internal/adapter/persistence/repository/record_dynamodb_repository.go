package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultReportsTableName = "inspection_reports"

type recordItem struct {
	ID                string `dynamodbav:"id"`
	CreatedAt         string `dynamodbav:"created_at"`
	FirstName         string `dynamodbav:"first_name"`
	LastName          string `dynamodbav:"last_name"`
	Email             string `dynamodbav:"email"`
	Phone             string `dynamodbav:"phone,omitempty"`
	PropertyAddress   string `dynamodbav:"property_address"`
	PaymentSessionID  string `dynamodbav:"payment_session_id,omitempty"`
	PaymentStatus     string `dynamodbav:"payment_status,omitempty"`
	DocumentName      string `dynamodbav:"document_name"`
	DocumentSize      int64  `dynamodbav:"document_size"`
	Estimate          string `dynamodbav:"estimate"`
	TermitesMentioned bool   `dynamodbav:"termites_mentioned"`
	PestsMentioned    bool   `dynamodbav:"pests_mentioned"`
	RotMentioned      bool   `dynamodbav:"rot_mentioned"`
	HandymanTotal     string `dynamodbav:"handyman_total"`
	ContractorTotal   string `dynamodbav:"contractor_total"`
}

type dynamoItemAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// RecordDynamoRepository persists StoredRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Records are written once with a conditional put and never updated.
type RecordDynamoRepository struct {
	ddb       dynamoItemAPI
	tableName string
}

var _ interfaces.IRecordRepository = (*RecordDynamoRepository)(nil)

func NewRecordDynamoRepository(ddb dynamoItemAPI, tableName string) *RecordDynamoRepository {
	if tableName == "" {
		tableName = DefaultReportsTableName
	}
	return &RecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RecordDynamoRepository) Create(ctx context.Context, rec entities.StoredRecord) (entities.StoredRecord, error) {
	av, err := attributevalue.MarshalMap(toRecordItem(rec))
	if err != nil {
		return entities.StoredRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.StoredRecord{}, ErrRecordAlreadyExists
		}
		return entities.StoredRecord{}, err
	}
	return rec, nil
}

func (r *RecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.StoredRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StoredRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoredRecord{}, nil
	}

	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StoredRecord{}, err
	}
	return fromRecordItem(it), nil
}

func toRecordItem(rec entities.StoredRecord) recordItem {
	return recordItem{
		ID:                rec.ID,
		CreatedAt:         formatTime(rec.CreatedAt),
		FirstName:         rec.FirstName,
		LastName:          rec.LastName,
		Email:             rec.Email,
		Phone:             rec.Phone,
		PropertyAddress:   rec.PropertyAddress,
		PaymentSessionID:  rec.PaymentSessionID,
		PaymentStatus:     rec.PaymentStatus,
		DocumentName:      rec.DocumentName,
		DocumentSize:      rec.DocumentSize,
		Estimate:          string(rec.EstimateRaw),
		TermitesMentioned: rec.TermitesMentioned,
		PestsMentioned:    rec.PestsMentioned,
		RotMentioned:      rec.RotMentioned,
		HandymanTotal:     floatToString(rec.HandymanTotal),
		ContractorTotal:   floatToString(rec.ContractorTotal),
	}
}

func fromRecordItem(it recordItem) entities.StoredRecord {
	handyman, _ := strconv.ParseFloat(it.HandymanTotal, 64)
	contractor, _ := strconv.ParseFloat(it.ContractorTotal, 64)
	var raw json.RawMessage
	if it.Estimate != "" {
		raw = json.RawMessage(it.Estimate)
	}
	return entities.StoredRecord{
		ID:                it.ID,
		CreatedAt:         parseTime(it.CreatedAt),
		FirstName:         it.FirstName,
		LastName:          it.LastName,
		Email:             it.Email,
		Phone:             it.Phone,
		PropertyAddress:   it.PropertyAddress,
		PaymentSessionID:  it.PaymentSessionID,
		PaymentStatus:     it.PaymentStatus,
		DocumentName:      it.DocumentName,
		DocumentSize:      it.DocumentSize,
		EstimateRaw:       raw,
		TermitesMentioned: it.TermitesMentioned,
		PestsMentioned:    it.PestsMentioned,
		RotMentioned:      it.RotMentioned,
		HandymanTotal:     handyman,
		ContractorTotal:   contractor,
	}
}
