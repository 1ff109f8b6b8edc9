// Package dynamodb provides the EntityStore backed by a single DynamoDB
// table. Edge mutations use TransactWriteItems so both endpoints of a
// relationship change in one atomic unit.
package dynamodb

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"chirp-backend/application/ports"
	"chirp-backend/domain/core/entities"
	"chirp-backend/pkg/auth"
	"chirp-backend/pkg/errors"
)

// Store implements ports.EntityStore on DynamoDB
type Store struct {
	client    *dynamodb.Client
	tableName string
	indexName string
	hasher    *auth.Hasher
	logger    *zap.Logger
	now       func() time.Time
}

var _ ports.EntityStore = (*Store)(nil)

// NewStore creates a DynamoDB-backed store
func NewStore(client *dynamodb.Client, tableName, indexName string, hasher *auth.Hasher, logger *zap.Logger) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		hasher:    hasher,
		logger:    logger,
		now:       time.Now,
	}
}

func metadataKey(pk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: skMetadata},
	}
}

// getItem fetches a metadata item, returning nil when it does not exist
func (s *Store) getItem(ctx context.Context, pk string) (map[string]types.AttributeValue, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       metadataKey(pk),
	})
	if err != nil {
		return nil, errors.NewDatabaseError("get item", err)
	}
	if len(result.Item) == 0 {
		return nil, nil
	}
	return result.Item, nil
}

// queryGSI resolves a metadata item through the lookup index
func (s *Store) queryGSI(ctx context.Context, gsi1pk string) (map[string]types.AttributeValue, error) {
	keyCond := expression.Key("GSI1PK").Equal(expression.Value(gsi1pk))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, errors.NewDatabaseError("build query", err)
	}

	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		IndexName:                 aws.String(s.indexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, errors.NewDatabaseError("query index", err)
	}
	if len(result.Items) == 0 {
		return nil, nil
	}
	return result.Items[0], nil
}

// scanEntityType pages through the table collecting items of one entity type
func (s *Store) scanEntityType(ctx context.Context, entityType string) ([]map[string]types.AttributeValue, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("EntityType").Equal(expression.Value(entityType))).
		Build()
	if err != nil {
		return nil, errors.NewDatabaseError("build scan", err)
	}

	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		result, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(s.tableName),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, errors.NewDatabaseError("scan", err)
		}
		items = append(items, result.Items...)
		if len(result.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = result.LastEvaluatedKey
	}
}

// transact runs a write transaction, mapping a failed existence condition to
// NOT_FOUND so callers see the same contract as the rest of the store.
func (s *Store) transact(ctx context.Context, resource string, items []types.TransactWriteItem) error {
	_, err := s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err == nil {
		return nil
	}
	var canceled *types.TransactionCanceledException
	if stderrors.As(err, &canceled) {
		for _, reason := range canceled.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return errors.NewNotFoundError(resource)
			}
		}
	}
	return errors.NewDatabaseError("transact write", err)
}

// addToSet builds a transaction member that adds one id to a string set
func (s *Store) addToSet(pk, attribute, member string) types.TransactWriteItem {
	return s.setUpdate(pk, attribute, member, "ADD #ids :member")
}

// removeFromSet builds a transaction member that removes one id from a string
// set. Removing an absent member is a no-op in DynamoDB, which keeps edge
// removal idempotent.
func (s *Store) removeFromSet(pk, attribute, member string) types.TransactWriteItem {
	return s.setUpdate(pk, attribute, member, "DELETE #ids :member")
}

// updateItem applies an update expression to an existing metadata item. The
// builders passed here touch scalar attributes only; the relationship string
// sets belong to the ADD/DELETE transact actions, so a concurrent edge flip
// can never be overwritten by an entity update.
func (s *Store) updateItem(ctx context.Context, resource, pk string, update expression.UpdateBuilder) error {
	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name("PK"))).
		Build()
	if err != nil {
		return errors.NewDatabaseError("build update", err)
	}
	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       metadataKey(pk),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var failed *types.ConditionalCheckFailedException
		if stderrors.As(err, &failed) {
			return errors.NewNotFoundError(resource)
		}
		return errors.NewDatabaseError("update item", err)
	}
	return nil
}

func userUpdate(user *entities.User) expression.UpdateBuilder {
	return expression.
		Set(expression.Name("GSI1PK"), expression.Value(usernameGSI(user.Credential.Username))).
		Set(expression.Name("Username"), expression.Value(user.Credential.Username)).
		Set(expression.Name("Password"), expression.Value(user.Credential.Password)).
		Set(expression.Name("Email"), expression.Value(user.Profile.Email)).
		Set(expression.Name("FirstName"), expression.Value(user.Profile.FirstName)).
		Set(expression.Name("LastName"), expression.Value(user.Profile.LastName)).
		Set(expression.Name("Phone"), expression.Value(user.Profile.Phone)).
		Set(expression.Name("Deleted"), expression.Value(user.Deleted))
}

// tweetUpdate writes Content and, once true, Deleted. Deletion is never
// written as false so an edit racing a delete cannot resurrect the tweet.
func tweetUpdate(tweet *entities.Tweet) expression.UpdateBuilder {
	update := expression.Set(expression.Name("Content"), expression.Value(tweet.Content))
	if tweet.Deleted {
		update = update.Set(expression.Name("Deleted"), expression.Value(true))
	}
	return update
}

func hashtagUpdate(tag *entities.Hashtag) expression.UpdateBuilder {
	return expression.Set(expression.Name("LastUsed"),
		expression.Value(tag.LastUsed.Format(time.RFC3339Nano)))
}

func (s *Store) setUpdate(pk, attribute, member, updateExpr string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:                aws.String(s.tableName),
			Key:                      metadataKey(pk),
			UpdateExpression:         aws.String(updateExpr),
			ConditionExpression:      aws.String("attribute_exists(PK)"),
			ExpressionAttributeNames: map[string]string{"#ids": attribute},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":member": &types.AttributeValueMemberSS{Value: []string{member}},
			},
		},
	}
}

// ----- users -----

func (s *Store) SaveUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	record := user.Clone()

	if record.Credential.Password != "" && !auth.IsEncoded(record.Credential.Password) {
		encoded, err := s.hasher.Hash(record.Credential.Password)
		if err != nil {
			return nil, errors.NewDatabaseError("encode password", err)
		}
		record.Credential.Password = encoded
	}

	if record.ID == "" {
		existing, err := s.queryGSI(ctx, usernameGSI(record.Credential.Username))
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.NewValidationError("username must be unique")
		}
		record.ID = uuid.NewString()
		record.Joined = s.now()
		if err := s.putItem(ctx, newUserItem(record)); err != nil {
			return nil, err
		}
		s.logger.Debug("user created", zap.String("userId", record.ID))
		return record, nil
	}

	stored, err := s.UserByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	if record.Credential.Username != stored.Credential.Username {
		owner, err := s.queryGSI(ctx, usernameGSI(record.Credential.Username))
		if err != nil {
			return nil, err
		}
		if owner != nil {
			return nil, errors.NewValidationError("username must be unique")
		}
	}
	if err := s.updateItem(ctx, "user", userPK(record.ID), userUpdate(record)); err != nil {
		return nil, err
	}
	record.Joined = stored.Joined
	record.TweetIDs = stored.TweetIDs
	record.LikedTweetIDs = stored.LikedTweetIDs
	record.MentionTweetIDs = stored.MentionTweetIDs
	record.FollowingIDs = stored.FollowingIDs
	record.FollowerIDs = stored.FollowerIDs
	return record, nil
}

func (s *Store) putItem(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return errors.NewDatabaseError("marshal item", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	}); err != nil {
		return errors.NewDatabaseError("put item", err)
	}
	return nil
}

func (s *Store) UserByID(ctx context.Context, id string) (*entities.User, error) {
	item, err := s.getItem(ctx, userPK(id))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.NewNotFoundError("user")
	}
	return unmarshalUser(item)
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*entities.User, error) {
	item, err := s.queryGSI(ctx, usernameGSI(username))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.NewNotFoundError("user")
	}
	return unmarshalUser(item)
}

func (s *Store) UserByCredential(ctx context.Context, cred entities.Credential) (*entities.User, error) {
	user, err := s.UserByUsername(ctx, cred.Username)
	if err != nil {
		return nil, err
	}
	if err := s.hasher.Compare(user.Credential.Password, cred.Password); err != nil {
		return nil, errors.NewNotFoundError("user")
	}
	return user, nil
}

func (s *Store) Users(ctx context.Context) ([]*entities.User, error) {
	items, err := s.scanEntityType(ctx, entityTypeUser)
	if err != nil {
		return nil, err
	}
	users := make([]*entities.User, 0, len(items))
	for _, item := range items {
		user, err := unmarshalUser(item)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func unmarshalUser(item map[string]types.AttributeValue) (*entities.User, error) {
	var record userItem
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, errors.NewDatabaseError("unmarshal user", err)
	}
	user, err := record.toEntity()
	if err != nil {
		return nil, errors.NewDatabaseError("decode user", err)
	}
	return user, nil
}

// ----- tweets -----

func (s *Store) SaveTweet(ctx context.Context, tweet *entities.Tweet) (*entities.Tweet, error) {
	record := tweet.Clone()

	if record.ID == "" {
		if _, err := s.UserByID(ctx, record.AuthorID); err != nil {
			return nil, err
		}
		if record.InReplyToID != "" {
			if _, err := s.TweetByID(ctx, record.InReplyToID); err != nil {
				return nil, err
			}
		}
		if record.RepostOfID != "" {
			if _, err := s.TweetByID(ctx, record.RepostOfID); err != nil {
				return nil, err
			}
		}

		record.ID = uuid.NewString()
		record.Posted = s.now()

		av, err := attributevalue.MarshalMap(newTweetItem(record))
		if err != nil {
			return nil, errors.NewDatabaseError("marshal tweet", err)
		}

		// The tweet insert and its derived inverse links commit together.
		items := []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(PK)"),
				},
			},
			s.addToSet(userPK(record.AuthorID), "TweetIDs", record.ID),
		}
		if record.InReplyToID != "" {
			items = append(items, s.addToSet(tweetPK(record.InReplyToID), "ReplyIDs", record.ID))
		}
		if record.RepostOfID != "" {
			items = append(items, s.addToSet(tweetPK(record.RepostOfID), "RepostIDs", record.ID))
		}
		if err := s.transact(ctx, "tweet", items); err != nil {
			return nil, err
		}
		s.logger.Debug("tweet created",
			zap.String("tweetId", record.ID),
			zap.String("authorId", record.AuthorID))
		return record, nil
	}

	stored, err := s.TweetByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	if err := s.updateItem(ctx, "tweet", tweetPK(record.ID), tweetUpdate(record)); err != nil {
		return nil, err
	}
	record.AuthorID = stored.AuthorID
	record.Posted = stored.Posted
	record.InReplyToID = stored.InReplyToID
	record.RepostOfID = stored.RepostOfID
	record.Deleted = stored.Deleted || record.Deleted
	record.ReplyIDs = stored.ReplyIDs
	record.RepostIDs = stored.RepostIDs
	record.HashtagIDs = stored.HashtagIDs
	record.MentionedUserIDs = stored.MentionedUserIDs
	record.LikerIDs = stored.LikerIDs
	return record, nil
}

func (s *Store) TweetByID(ctx context.Context, id string) (*entities.Tweet, error) {
	item, err := s.getItem(ctx, tweetPK(id))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.NewNotFoundError("tweet")
	}
	return unmarshalTweet(item)
}

func (s *Store) TweetsByIDs(ctx context.Context, ids []string) ([]*entities.Tweet, error) {
	tweets := make([]*entities.Tweet, 0, len(ids))
	for _, id := range ids {
		tweet, err := s.TweetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, tweet)
	}
	return tweets, nil
}

func (s *Store) Tweets(ctx context.Context) ([]*entities.Tweet, error) {
	items, err := s.scanEntityType(ctx, entityTypeTweet)
	if err != nil {
		return nil, err
	}
	tweets := make([]*entities.Tweet, 0, len(items))
	for _, item := range items {
		tweet, err := unmarshalTweet(item)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, tweet)
	}
	return tweets, nil
}

func unmarshalTweet(item map[string]types.AttributeValue) (*entities.Tweet, error) {
	var record tweetItem
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, errors.NewDatabaseError("unmarshal tweet", err)
	}
	tweet, err := record.toEntity()
	if err != nil {
		return nil, errors.NewDatabaseError("decode tweet", err)
	}
	return tweet, nil
}

// ----- hashtags -----

func (s *Store) SaveHashtag(ctx context.Context, tag *entities.Hashtag) (*entities.Hashtag, error) {
	record := tag.Clone()

	if record.ID == "" {
		existing, err := s.queryGSI(ctx, labelGSI(record.Label))
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.NewValidationError("hashtag label must be unique")
		}
		record.ID = uuid.NewString()
		if err := s.putItem(ctx, newHashtagItem(record)); err != nil {
			return nil, err
		}
		return record, nil
	}

	stored, err := s.hashtagByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	if err := s.updateItem(ctx, "hashtag", tagPK(record.ID), hashtagUpdate(record)); err != nil {
		return nil, err
	}
	record.Label = stored.Label
	record.TweetIDs = stored.TweetIDs
	return record, nil
}

func (s *Store) hashtagByID(ctx context.Context, id string) (*entities.Hashtag, error) {
	item, err := s.getItem(ctx, tagPK(id))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.NewNotFoundError("hashtag")
	}
	return unmarshalHashtag(item)
}

func (s *Store) HashtagByLabel(ctx context.Context, label string) (*entities.Hashtag, error) {
	item, err := s.queryGSI(ctx, labelGSI(label))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.NewNotFoundError("hashtag")
	}
	return unmarshalHashtag(item)
}

func (s *Store) Hashtags(ctx context.Context) ([]*entities.Hashtag, error) {
	items, err := s.scanEntityType(ctx, entityTypeHashtag)
	if err != nil {
		return nil, err
	}
	tags := make([]*entities.Hashtag, 0, len(items))
	for _, item := range items {
		tag, err := unmarshalHashtag(item)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func unmarshalHashtag(item map[string]types.AttributeValue) (*entities.Hashtag, error) {
	var record hashtagItem
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, errors.NewDatabaseError("unmarshal hashtag", err)
	}
	tag, err := record.toEntity()
	if err != nil {
		return nil, errors.NewDatabaseError("decode hashtag", err)
	}
	return tag, nil
}

// ----- relationships -----

func (s *Store) AddFollow(ctx context.Context, followerID, followeeID string) error {
	return s.transact(ctx, "user", []types.TransactWriteItem{
		s.addToSet(userPK(followerID), "FollowingIDs", followeeID),
		s.addToSet(userPK(followeeID), "FollowerIDs", followerID),
	})
}

func (s *Store) RemoveFollow(ctx context.Context, followerID, followeeID string) error {
	return s.transact(ctx, "user", []types.TransactWriteItem{
		s.removeFromSet(userPK(followerID), "FollowingIDs", followeeID),
		s.removeFromSet(userPK(followeeID), "FollowerIDs", followerID),
	})
}

func (s *Store) AddLike(ctx context.Context, userID, tweetID string) error {
	return s.transact(ctx, "tweet", []types.TransactWriteItem{
		s.addToSet(userPK(userID), "LikedTweetIDs", tweetID),
		s.addToSet(tweetPK(tweetID), "LikerIDs", userID),
	})
}

func (s *Store) RemoveLike(ctx context.Context, userID, tweetID string) error {
	return s.transact(ctx, "tweet", []types.TransactWriteItem{
		s.removeFromSet(userPK(userID), "LikedTweetIDs", tweetID),
		s.removeFromSet(tweetPK(tweetID), "LikerIDs", userID),
	})
}

func (s *Store) AddMention(ctx context.Context, tweetID, userID string) error {
	return s.transact(ctx, "tweet", []types.TransactWriteItem{
		s.addToSet(tweetPK(tweetID), "MentionedUserIDs", userID),
		s.addToSet(userPK(userID), "MentionTweetIDs", tweetID),
	})
}

func (s *Store) RemoveMention(ctx context.Context, tweetID, userID string) error {
	return s.transact(ctx, "tweet", []types.TransactWriteItem{
		s.removeFromSet(tweetPK(tweetID), "MentionedUserIDs", userID),
		s.removeFromSet(userPK(userID), "MentionTweetIDs", tweetID),
	})
}

func (s *Store) SyncTweetEdges(ctx context.Context, tweetID string, hashtagIDs, mentionedUserIDs []string) error {
	tweet, err := s.TweetByID(ctx, tweetID)
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{s.tweetEdgeSets(tweetID, hashtagIDs, mentionedUserIDs)}

	attach, detach := diffIDs(tweet.HashtagIDs, hashtagIDs)
	for _, id := range attach {
		items = append(items, s.addToSet(tagPK(id), "TweetIDs", tweetID))
	}
	for _, id := range detach {
		items = append(items, s.removeFromSet(tagPK(id), "TweetIDs", tweetID))
	}

	attach, detach = diffIDs(tweet.MentionedUserIDs, mentionedUserIDs)
	for _, id := range attach {
		items = append(items, s.addToSet(userPK(id), "MentionTweetIDs", tweetID))
	}
	for _, id := range detach {
		items = append(items, s.removeFromSet(userPK(id), "MentionTweetIDs", tweetID))
	}

	return s.transact(ctx, "tweet", items)
}

// tweetEdgeSets builds the transaction member that overwrites the tweet's
// derived edge sets with their reconciled values. Empty sets are removed
// because DynamoDB rejects empty string sets.
func (s *Store) tweetEdgeSets(tweetID string, hashtagIDs, mentionedUserIDs []string) types.TransactWriteItem {
	var setParts, removeParts []string
	values := map[string]types.AttributeValue{}

	if len(hashtagIDs) > 0 {
		setParts = append(setParts, "#h = :h")
		values[":h"] = &types.AttributeValueMemberSS{Value: hashtagIDs}
	} else {
		removeParts = append(removeParts, "#h")
	}
	if len(mentionedUserIDs) > 0 {
		setParts = append(setParts, "#m = :m")
		values[":m"] = &types.AttributeValueMemberSS{Value: mentionedUserIDs}
	} else {
		removeParts = append(removeParts, "#m")
	}

	updateExpr := ""
	if len(setParts) > 0 {
		updateExpr = "SET " + joinParts(setParts)
	}
	if len(removeParts) > 0 {
		if updateExpr != "" {
			updateExpr += " "
		}
		updateExpr += "REMOVE " + joinParts(removeParts)
	}

	update := &types.Update{
		TableName:           aws.String(s.tableName),
		Key:                 metadataKey(tweetPK(tweetID)),
		UpdateExpression:    aws.String(updateExpr),
		ConditionExpression: aws.String("attribute_exists(PK)"),
		ExpressionAttributeNames: map[string]string{
			"#h": "HashtagIDs",
			"#m": "MentionedUserIDs",
		},
	}
	if len(values) > 0 {
		update.ExpressionAttributeValues = values
	}
	return types.TransactWriteItem{Update: update}
}

func joinParts(parts []string) string {
	out := ""
	for i, part := range parts {
		if i > 0 {
			out += ", "
		}
		out += part
	}
	return out
}

func diffIDs(current, desired []string) (attach, detach []string) {
	want := make(map[string]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}
	have := make(map[string]struct{}, len(current))
	for _, id := range current {
		have[id] = struct{}{}
	}
	for _, id := range desired {
		if _, ok := have[id]; !ok {
			attach = append(attach, id)
		}
	}
	for _, id := range current {
		if _, ok := want[id]; !ok {
			detach = append(detach, id)
		}
	}
	return attach, detach
}

// NewClient builds a DynamoDB client for the configured region
func NewClient(ctx context.Context, region string) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}
