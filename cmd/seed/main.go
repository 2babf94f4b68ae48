package main

import (
	"fmt"
	"time"

	"github.com/newsroom-next/internal/config"
	"github.com/newsroom-next/internal/constants"
	"github.com/newsroom-next/internal/logger"
	"github.com/newsroom-next/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 新闻示例数据
	news := []models.News{
		{
			Title:    "เปิดตัวหลักสูตรอบรมความปลอดภัยไซเบอร์ประจำปี",
			Category: "ประชาสัมพันธ์",
			Image:    "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=1200",
			Album: models.StringArray{
				"https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=1200",
				"https://images.unsplash.com/photo-1515879218367-8466d910aaa4?w=1200",
			},
			Time:      "09:00 น.",
			Content:   "<p>ขอเชิญผู้สนใจเข้าร่วมหลักสูตรอบรมความปลอดภัยไซเบอร์ รับจำนวนจำกัด</p>",
			Video:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			VideoType: constants.VideoTypeURL,
			IsVisible: true,
		},
		{
			Title:     "สรุปผลการประชุมคณะกรรมการประจำเดือน",
			Category:  constants.NewsDefaultCategory,
			Image:     constants.NewsFallbackImageURL,
			Album:     models.StringArray{},
			Time:      "13:30 น.",
			Content:   "<p>คณะกรรมการมีมติเห็นชอบแผนงานประจำไตรมาสถัดไป</p>",
			IsVisible: true,
		},
		{
			Title:     "ประกาศปิดปรับปรุงระบบ (ฉบับร่าง)",
			Category:  "ประกาศ",
			Image:     constants.NewsFallbackImageURL,
			Album:     models.StringArray{},
			Time:      constants.NewsDefaultTimeLabel,
			Content:   "<p>ระบบจะปิดปรับปรุงชั่วคราว รายละเอียดจะแจ้งให้ทราบอีกครั้ง</p>",
			IsVisible: false,
		},
	}

	for _, item := range news {
		var existing models.News
		if err := models.DB.Where("title = ?", item.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create news %q: %v", item.Title, err)
			} else {
				stdLog.Printf("Created news: %s", item.Title)
			}
		} else {
			stdLog.Printf("News already exists: %s", item.Title)
		}
	}

	// 培训示例数据
	now := time.Now()
	trainings := []models.Training{
		{
			Title:        "อบรมการปฐมพยาบาลเบื้องต้น",
			Date:         15,
			Month:        int(now.Month()) - 1,
			Year:         now.Year(),
			Time:         "09:00 - 16:00 น.",
			Location:     "ห้องประชุมใหญ่ ชั้น 3",
			Seats:        40,
			Available:    40,
			Price:        "ฟรี",
			Type:         constants.TrainingTypeDefault,
			Speaker:      "นพ. สมชาย ใจดี",
			SpeakerImage: "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400",
			Description:  "<p>เรียนรู้การปฐมพยาบาลเบื้องต้นและการช่วยฟื้นคืนชีพ (CPR)</p>",
		},
		{
			Title:       "เวิร์กช็อปการตลาดดิจิทัลสำหรับผู้เริ่มต้น",
			Date:        1,
			Month:       (int(now.Month()) + 1) % 12,
			Year:        now.Year(),
			Time:        "13:00 - 17:00 น.",
			Location:    "ออนไลน์ผ่าน Zoom",
			Seats:       100,
			Available:   72,
			Price:       "500 บาท",
			Type:        "Online",
			Speaker:     "คุณวิภาวี รัตนกุล",
			Description: "<p>พื้นฐานการทำการตลาดออนไลน์ พร้อมตัวอย่างจริง</p>",
		},
	}

	for _, item := range trainings {
		var existing models.Training
		if err := models.DB.Where("title = ?", item.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create training %q: %v", item.Title, err)
			} else {
				stdLog.Printf("Created training: %s", item.Title)
			}
		} else {
			stdLog.Printf("Training already exists: %s", item.Title)
		}
	}

	// 媒体示例数据
	media := []models.Media{
		{
			Title:       "บรรยากาศงานอบรมประจำปี",
			Category:    constants.MediaCategoryImage,
			SourceType:  constants.MediaSourceLink,
			URL:         "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=1200",
			Description: "<p>ภาพบรรยากาศจากงานอบรมประจำปีที่ผ่านมา</p>",
		},
		{
			Title:       "วิดีโอแนะนำองค์กร",
			Category:    constants.MediaCategoryVideo,
			SourceType:  constants.MediaSourceLink,
			URL:         "https://vimeo.com/76979871",
			Description: "<p>ทำความรู้จักกับภารกิจและวิสัยทัศน์ขององค์กร</p>",
		},
		{
			Title:      "คลิปสัมภาษณ์วิทยากร",
			Category:   constants.MediaCategoryVideo,
			SourceType: constants.MediaSourceEmbed,
			EmbedCode:  `<iframe src="https://www.youtube.com/embed/dQw4w9WgXcQ" width="560" height="315" frameborder="0" allowfullscreen title="interview"></iframe>`,
		},
	}

	for _, item := range media {
		var existing models.Media
		if err := models.DB.Where("title = ?", item.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create media %q: %v", item.Title, err)
			} else {
				stdLog.Printf("Created media: %s", item.Title)
			}
		} else {
			stdLog.Printf("Media already exists: %s", item.Title)
		}
	}

	fmt.Println("\n✅ Sample data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 News articles (1 hidden)")
	fmt.Println("- 2 Training events")
	fmt.Println("- 3 Media assets")
}
