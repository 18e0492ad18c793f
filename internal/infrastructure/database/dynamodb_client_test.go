package database

import (
	"context"
	"errors"
	"testing"

	appconfig "inspection_estimator/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTables struct {
	describeErr error
	createErr   error
	created     *dynamodb.CreateTableInput
}

func (f *fakeTables) DescribeTable(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return &dynamodb.DescribeTableOutput{}, f.describeErr
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = in
	return &dynamodb.CreateTableOutput{}, f.createErr
}

func TestEnsureTable(t *testing.T) {
	t.Run("existing table", func(t *testing.T) {
		f := &fakeTables{}
		created, err := EnsureTable(context.Background(), f, "inspection_reports")
		if err != nil || created || f.created != nil {
			t.Fatalf("expected no-op, got created=%v err=%v", created, err)
		}
	})

	t.Run("missing table is created", func(t *testing.T) {
		f := &fakeTables{describeErr: &types.ResourceNotFoundException{}}
		created, err := EnsureTable(context.Background(), f, "inspection_reports")
		if err != nil || !created {
			t.Fatalf("expected table to be created, got created=%v err=%v", created, err)
		}
		if *f.created.TableName != "inspection_reports" || *f.created.KeySchema[0].AttributeName != "id" {
			t.Fatalf("unexpected create input: %+v", f.created)
		}
	})

	t.Run("describe failure", func(t *testing.T) {
		boom := errors.New("access denied")
		_, err := EnsureTable(context.Background(), &fakeTables{describeErr: boom}, "t")
		if !errors.Is(err, boom) {
			t.Fatalf("expected describe error, got %v", err)
		}
	})
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), appconfig.StoreConfig{
		AWSRegion:        "sa-east-1",
		AWSAccessKeyID:   "local",
		AWSSecretKey:     "local",
		DynamoDBEndpoint: "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("unexpected region: %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("unexpected credentials: %+v err=%v", creds, err)
	}
}
