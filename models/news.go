package models

import "gorm.io/gorm"

// News 新闻模型。
//
// Title - 新闻标题;
// Text - 新闻正文;
// Image - 图片引用（可为空，存储路径或外部 key）;
// Archived - 归档标记，归档后不出现在公开列表;
// Tags - 关联标签（多对多）;
// Likes - 点赞净值（#like - #dislike），只允许 LikeNews/DislikeNews 修改
type News struct {
	gorm.Model
	Title    string `gorm:"type:varchar(200);not null" json:"title"`
	Text     string `gorm:"type:text;not null" json:"text"`
	Image    string `gorm:"type:varchar(255)" json:"image"`
	Archived bool   `gorm:"default:false" json:"archived"`
	Tags     []Tag  `gorm:"many2many:news_tags" json:"tags"`
	Likes    int    `gorm:"default:0" json:"likes"`
}

func (News) TableName() string {
	return "news"
}
