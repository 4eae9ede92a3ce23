package di

import (
	"time"

	"newscleanse/config"
	"newscleanse/driver/newsdb"
	"newscleanse/driver/recoapi"
	"newscleanse/gateway/article_gateway"
	"newscleanse/gateway/engagement_gateway"
	"newscleanse/gateway/event_gateway"
	"newscleanse/gateway/feed_gateway"
	"newscleanse/gateway/read_session_gateway"
	"newscleanse/gateway/recommender_gateway"
	"newscleanse/gateway/user_session_gateway"
	"newscleanse/usecase/article_usecase"
	"newscleanse/usecase/engagement_usecase"
	"newscleanse/usecase/home_feed_usecase"
	"newscleanse/usecase/mood_usecase"
	"newscleanse/usecase/read_session_usecase"
	"newscleanse/usecase/user_session_usecase"
)

// ApplicationComponents wires drivers through gateways into the usecases
// the REST layer serves.
type ApplicationComponents struct {
	ArticleUsecase     *article_usecase.ArticleUsecase
	HomeFeedUsecase    *home_feed_usecase.HomeFeedUsecase
	EngagementUsecase  *engagement_usecase.EngagementUsecase
	MoodUsecase        *mood_usecase.MoodUsecase
	ReadSessionUsecase *read_session_usecase.ReadSessionUsecase
	UserSessionUsecase *user_session_usecase.UserSessionUsecase

	Repository *newsdb.Repository
	Location   *time.Location
}

// NewApplicationComponents assembles the full graph. The time zone must
// already be validated by config.
func NewApplicationComponents(repo *newsdb.Repository, cfg *config.Config) *ApplicationComponents {
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		loc = time.UTC
	}

	recoClient := recoapi.NewClient(
		cfg.External.RecommenderBaseURL,
		cfg.External.SentimentURL,
		cfg.External.CleanseURL,
		cfg.External.RecoTimeout,
		cfg.External.RateInterval,
	)

	articleGatewayImpl := article_gateway.NewArticleGateway(repo)
	feedGatewayImpl := feed_gateway.NewFeedGateway(repo)
	engagementGatewayImpl := engagement_gateway.NewEngagementGateway(repo)
	eventGatewayImpl := event_gateway.NewEventGateway(repo)
	readSessionGatewayImpl := read_session_gateway.NewReadSessionGateway(repo)
	userSessionGatewayImpl := user_session_gateway.NewUserSessionGateway(repo)
	recommenderGatewayImpl := recommender_gateway.NewRecommenderGateway(recoClient)

	articleUsecase := article_usecase.NewArticleUsecase(
		articleGatewayImpl,
		articleGatewayImpl,
		articleGatewayImpl,
		articleGatewayImpl,
		articleGatewayImpl,
		recommenderGatewayImpl,
		recommenderGatewayImpl,
		recommenderGatewayImpl,
		recommenderGatewayImpl,
	)
	homeFeedUsecase := home_feed_usecase.NewHomeFeedUsecase(feedGatewayImpl, engagementGatewayImpl, cfg.Feed.LookbackDays, loc)
	engagementUsecase := engagement_usecase.NewEngagementUsecase(engagementGatewayImpl, engagementGatewayImpl, engagementGatewayImpl, loc)
	moodUsecase := mood_usecase.NewMoodUsecase(eventGatewayImpl, eventGatewayImpl, loc)
	readSessionUsecase := read_session_usecase.NewReadSessionUsecase(readSessionGatewayImpl, readSessionGatewayImpl, eventGatewayImpl)
	userSessionUsecase := user_session_usecase.NewUserSessionUsecase(userSessionGatewayImpl, userSessionGatewayImpl)

	return &ApplicationComponents{
		ArticleUsecase:     articleUsecase,
		HomeFeedUsecase:    homeFeedUsecase,
		EngagementUsecase:  engagementUsecase,
		MoodUsecase:        moodUsecase,
		ReadSessionUsecase: readSessionUsecase,
		UserSessionUsecase: userSessionUsecase,
		Repository:         repo,
		Location:           loc,
	}
}
