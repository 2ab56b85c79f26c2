package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createVideo(t *testing.T, e *env, token, title, category string) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/videos", token, gin.H{"title": title, "category": category})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return uint(decode(t, w)["id"].(float64))
}

func TestCreateVideoDefaults(t *testing.T) {
	e := newEnv(t, "")
	token := e.registerAndLogin(t, "a@example.com")

	w := e.do(t, http.MethodPost, "/videos", token, gin.H{"title": "My clip"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "My clip", body["title"])
	assert.Equal(t, "Other", body["category"])
	assert.Equal(t, "0:00", body["duration"])
	assert.NotZero(t, body["owner_id"])
}

func TestCreateVideoRequiresAuth(t *testing.T) {
	e := newEnv(t, "")

	w := e.do(t, http.MethodPost, "/videos", "", gin.H{"title": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetVideoNotFound(t *testing.T) {
	e := newEnv(t, "")

	w := e.do(t, http.MethodGet, "/videos/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Video not found")
}

func TestListVideosPagination(t *testing.T) {
	e := newEnv(t, "")
	token := e.registerAndLogin(t, "a@example.com")

	for _, title := range []string{"one", "two", "three", "four"} {
		createVideo(t, e, token, title, "Other")
	}

	first := decodeList(t, e.do(t, http.MethodGet, "/videos?skip=0&limit=2", "", nil))
	second := decodeList(t, e.do(t, http.MethodGet, "/videos?skip=2&limit=2", "", nil))

	require.Len(t, first, 2)
	require.Len(t, second, 2)

	var titles []string
	for _, v := range append(first, second...) {
		titles = append(titles, v["title"].(string))
	}
	assert.Equal(t, []string{"four", "three", "two", "one"}, titles)
}

func TestPresignReturnsScopedURL(t *testing.T) {
	e := newEnv(t, "")
	token := e.registerAndLogin(t, "up@example.com")

	w := e.do(t, http.MethodPost, "/uploads/presign", token, gin.H{
		"filename":     "clip.mp4",
		"content_type": "video/mp4",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	key := body["s3_key"].(string)
	assert.Regexp(t, `^videos/\d+/\d+_[0-9a-f]{32}$`, key)
	assert.Equal(t, "https://upload.example.com/"+key, body["upload_url"])

	// Phase 1 records nothing server-side.
	all, err := e.stores.Videos.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUploadCompleteCreatesVideo(t *testing.T) {
	e := newEnv(t, "")
	token := e.registerAndLogin(t, "up@example.com")

	w := e.do(t, http.MethodPost, "/uploads/complete", token, gin.H{
		"s3_key": "videos/1/1700000000_abc",
		"title":  "Uploaded clip",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "https://clips.s3.amazonaws.com/videos/1/1700000000_abc", body["public_url"])

	id := uint(body["video_id"].(float64))
	video, err := e.stores.Videos.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Uploaded clip", video.Title)
	assert.Equal(t, "Other", video.Category)
	assert.Equal(t, "videos/1/1700000000_abc", video.S3Key)
	require.NotNil(t, video.OwnerID)
}

func TestCreateCommentUnknownVideo(t *testing.T) {
	e := newEnv(t, "")
	token := e.registerAndLogin(t, "c@example.com")

	w := e.do(t, http.MethodPost, "/comments", token, gin.H{"video_id": 99, "content": "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Nothing written for the dangling reference.
	comments, err := e.stores.Comments.ListForVideo(99)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentsRoundTrip(t *testing.T) {
	e := newEnv(t, "")
	token := e.registerAndLogin(t, "c@example.com")
	videoID := createVideo(t, e, token, "v", "Other")

	w := e.do(t, http.MethodPost, "/comments", token, gin.H{"video_id": videoID, "content": "first"})
	require.Equal(t, http.StatusOK, w.Code)
	w = e.do(t, http.MethodPost, "/comments", token, gin.H{"video_id": videoID, "content": "second"})
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, e.do(t, http.MethodGet, "/comments/video/1", "", nil))
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0]["content"])
	assert.Equal(t, "first", list[1]["content"])
}

func TestListCommentsUnknownVideoIsEmpty(t *testing.T) {
	e := newEnv(t, "")

	w := e.do(t, http.MethodGet, "/comments/video/424242", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestRecommendSameCategoryFirst(t *testing.T) {
	e := newEnv(t, "")
	token := e.registerAndLogin(t, "r@example.com")

	createVideo(t, e, token, "target", "Music")     // id 1
	createVideo(t, e, token, "also music", "Music") // id 2
	createVideo(t, e, token, "sports", "Sports")    // id 3

	list := decodeList(t, e.do(t, http.MethodGet, "/recommend/for_video/1?limit=2", "", nil))
	require.Len(t, list, 2)
	assert.Equal(t, float64(2), list[0]["id"])
	assert.Equal(t, float64(3), list[1]["id"])
}

func TestRecommendUnknownFallsBackToNewest(t *testing.T) {
	e := newEnv(t, "")
	token := e.registerAndLogin(t, "r@example.com")

	createVideo(t, e, token, "oldest", "Music")
	createVideo(t, e, token, "middle", "Music")
	createVideo(t, e, token, "newest", "Sports")

	list := decodeList(t, e.do(t, http.MethodGet, "/recommend/for_video/999?limit=2", "", nil))
	require.Len(t, list, 2)
	assert.Equal(t, "newest", list[0]["title"])
	assert.Equal(t, "middle", list[1]["title"])
}
