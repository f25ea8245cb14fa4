package services

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"newsblog/config"
	"newsblog/global"
	"newsblog/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const rankKey = "rank:news:likes"

// LikeNews 记录用户点赞，返回新闻当前的点赞净值
func LikeNews(userID, newsID uint) (int, error) {
	return reactNews(userID, newsID, true)
}

// DislikeNews 记录用户点踩，返回新闻当前的点赞净值
func DislikeNews(userID, newsID uint) (int, error) {
	return reactNews(userID, newsID, false)
}

// reactNews 的约束：每个 (user, news) 对至多记录一次，
// 只有首次记录才调整 news.likes。重复请求（包括反向请求）
// 不报错，直接返回已有净值
func reactNews(userID, newsID uint, isLike bool) (int, error) {
	var news models.News
	if err := global.Db.Select("id", "likes").First(&news, newsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNewsNotFound
		}
		return 0, err
	}

	// 条件插入：唯一约束 + DO NOTHING，两个并发请求只有一个能成功
	entry := models.UserLike{UserID: userID, NewsID: newsID, Like: isLike}
	res := global.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "news_id"}},
		DoNothing: true,
	}).Create(&entry)
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected > 0 {
		delta := 1
		if !isLike {
			delta = -1
		}
		// 存储层自增，不在内存里读改写
		err := global.Db.Model(&models.News{}).Where("id = ?", newsID).
			UpdateColumn("likes", gorm.Expr("likes + ?", delta)).Error
		if err != nil {
			return 0, err
		}

		if global.RedisDB != nil {
			if err := global.RedisDB.ZIncrBy(rankKey, float64(delta), strconv.FormatUint(uint64(newsID), 10)).Err(); err != nil {
				log.Println("failed to update like rank:", err)
			}
		}

		publishReactionEvent(userID, newsID, isLike)
	}

	var likes int
	err := global.Db.Model(&models.News{}).Select("likes").
		Where("id = ?", newsID).Scan(&likes).Error
	if err != nil {
		return 0, err
	}
	return likes, nil
}

type reactionEvent struct {
	UserID    uint      `json:"user_id"`
	NewsID    uint      `json:"news_id"`
	Like      bool      `json:"like"`
	Timestamp time.Time `json:"timestamp"`
}

// publishReactionEvent 把点赞事件发到 MQ 供下游消费，尽力而为
func publishReactionEvent(userID, newsID uint, isLike bool) {
	if global.RabbitChannel == nil {
		return
	}
	qname := "news.reaction.queue"
	if config.AppConfig != nil && config.AppConfig.RabbitMQ.Queue != "" {
		qname = config.AppConfig.RabbitMQ.Queue
	}

	body, err := json.Marshal(reactionEvent{
		UserID:    userID,
		NewsID:    newsID,
		Like:      isLike,
		Timestamp: time.Now(),
	})
	if err != nil {
		return
	}

	err = global.RabbitChannel.Publish("", qname, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Println("failed to publish reaction event:", err)
	}
}

type RankedNews struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Score int64  `json:"score"`
	Rank  int    `json:"rank"`
}

// GetTopNews 从 Redis ZSET 取点赞排行，并补上新闻标题
func GetTopNews(top int) ([]RankedNews, error) {
	if top <= 0 {
		top = 10
	}

	zres, err := global.RedisDB.ZRevRangeWithScores(rankKey, 0, int64(top-1)).Result()
	if err != nil {
		return nil, err
	}

	list := make([]RankedNews, 0, len(zres))
	for idx, z := range zres {
		memberStr, _ := z.Member.(string)
		id, _ := strconv.ParseUint(memberStr, 10, 64)
		item := RankedNews{ID: uint(id), Score: int64(z.Score), Rank: idx + 1}

		var news models.News
		if err := global.Db.Select("id", "title").First(&news, uint(id)).Error; err == nil {
			item.Title = news.Title
		}
		list = append(list, item)
	}
	return list, nil
}
