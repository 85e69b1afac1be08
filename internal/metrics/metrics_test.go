package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/classes/", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/classes/", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/book/", "201", 0.1)
	RecordHTTPRequest("POST", "/book/", "201", 0.2)
	RecordHTTPRequest("POST", "/book/", "400", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/book/", "201"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/book/", "400"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordBooking(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("success")
	RecordBooking("success")
	RecordBooking("no_slots")

	assert.Equal(t, float64(2), testutil.ToFloat64(BookingsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BookingsTotal.WithLabelValues("no_slots")))
}

func TestRecordClassList(t *testing.T) {
	ClassListRequestsTotal.Reset()

	RecordClassList("Asia/Kolkata")
	RecordClassList("Asia/Kolkata")
	RecordClassList("America/New_York")

	assert.Equal(t, float64(2), testutil.ToFloat64(ClassListRequestsTotal.WithLabelValues("Asia/Kolkata")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ClassListRequestsTotal.WithLabelValues("America/New_York")))
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("booking_confirmation", "queued")

	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "queued")))
}
