package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/models"
)

func GetBlogPosts(c echo.Context) error {
	filter := bson.M{}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("blogs").Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch posts"})
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	for cursor.Next(ctx) {
		var post models.BlogPost
		cursor.Decode(&post)
		posts = append(posts, post)
	}

	return c.JSON(http.StatusOK, posts)
}

func GetBlogPost(c echo.Context) error {
	var post models.BlogPost
	err := database.DB.Collection("blogs").FindOne(
		c.Request().Context(),
		bson.M{"slug": c.Param("slug")},
	).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Post not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch post"})
	}

	return c.JSON(http.StatusOK, post)
}

func CreateBlogPost(c echo.Context) error {
	var post models.BlogPost
	if err := c.Bind(&post); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if post.Title == "" || post.Body == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title and body are required"})
	}
	if post.Slug == "" {
		post.Slug = slugify(post.Title)
	}
	if post.Status == "" {
		post.Status = "Published"
	}

	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("blogs").InsertOne(ctx, post); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create post"})
	}

	return c.JSON(http.StatusCreated, post)
}

func UpdateBlogPost(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid post ID"})
	}

	var post models.BlogPost
	if err := c.Bind(&post); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":     post.Title,
		"author":    post.Author,
		"excerpt":   post.Excerpt,
		"body":      post.Body,
		"image":     post.Image,
		"status":    post.Status,
		"updatedAt": time.Now(),
	}}

	result, err := database.DB.Collection("blogs").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update post"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Post not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Post updated successfully"})
}

func DeleteBlogPost(c echo.Context) error {
	return deleteByID(c, "blogs", "Post")
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
