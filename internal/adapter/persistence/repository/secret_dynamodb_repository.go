package repository

import (
	"context"
	"time"

	"stripe_books_bridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSecretsTableName = "bridge_secrets"

type secretItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoItemAPI is the part of *dynamodb.Client the secret store needs.
type DynamoItemAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// SecretDynamoRepository keeps bridge secrets in a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
type SecretDynamoRepository struct {
	ddb       DynamoItemAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ISecretStore = (*SecretDynamoRepository)(nil)

func NewSecretDynamoRepository(ddb DynamoItemAPI, tableName string) *SecretDynamoRepository {
	if tableName == "" {
		tableName = defaultSecretsTableName
	}
	return &SecretDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *SecretDynamoRepository) Get(ctx context.Context, key string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it secretItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.Value, nil
}

// Put overwrites any previous value for key.
func (r *SecretDynamoRepository) Put(ctx context.Context, key string, value string) error {
	av, err := attributevalue.MarshalMap(secretItem{
		Key:       key,
		Value:     value,
		UpdatedAt: r.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
