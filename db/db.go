// Package db fetches catalog metadata for indexed files from DynamoDB.
package db

import (
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/tmakinen/partwise/model"
)

const tableName = "partwise-metadata"

func endpoint() string {
	if e := os.Getenv("DYNAMO_ENDPOINT"); e != "" {
		return e
	}
	return "http://localhost:8000"
}

// GetScoreMetadatas batch-fetches metadata for up to 10 filenames. Files
// without a catalog entry are absent from the result.
func GetScoreMetadatas(filenames []string) map[string]model.ScoreMetadata {
	if len(filenames) > 10 {
		panic("Not supposed to pass in more than 10 filenames!")
	}

	res := make(map[string]model.ScoreMetadata)
	if len(filenames) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(filename)},
		})
	}

	ep := endpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &ep,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[tableName] {
		var s model.ScoreMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			s.Year = uint(year)
		}
		if v["Title"] != nil && v["Title"].S != nil {
			s.Title = *v["Title"].S
		}
		if v["Composer"] != nil && v["Composer"].S != nil {
			s.Composer = *v["Composer"].S
		}
		res[*v["PK"].S] = s
	}

	return res
}
