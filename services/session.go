package services

import (
	"strconv"
	"time"

	"newsblog/config"
	"newsblog/global"
)

func sessionViewedKey(sessionID string) string {
	return "session:" + sessionID + ":viewed"
}

func sessionTTL() time.Duration {
	if config.AppConfig != nil && config.AppConfig.Session.TTLHours > 0 {
		return time.Duration(config.AppConfig.Session.TTLHours) * time.Hour
	}
	return 24 * time.Hour
}

// MarkViewed 把 newsID 加入会话的已浏览集合。
// 返回 true 表示本会话首次浏览该新闻。SAdd 在存储层保证去重
func MarkViewed(sessionID string, newsID uint) (bool, error) {
	key := sessionViewedKey(sessionID)
	added, err := global.RedisDB.SAdd(key, strconv.FormatUint(uint64(newsID), 10)).Result()
	if err != nil {
		return false, err
	}
	// 集合随会话过期，每次访问刷新
	global.RedisDB.Expire(key, sessionTTL())
	return added > 0, nil
}

// HasViewed 查询会话是否已浏览过该新闻
func HasViewed(sessionID string, newsID uint) (bool, error) {
	key := sessionViewedKey(sessionID)
	return global.RedisDB.SIsMember(key, strconv.FormatUint(uint64(newsID), 10)).Result()
}
