// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	ptr5jbvl0QΣΔ7uHn2IFqPbXkgΞΞ   = ord.NewPtrSer[Insights](InsightsMUS)
	sliceUΔJoI6yTIFf6SSTBPD5gqQΞΞ = ord.NewSliceSer[SpeakerTurn](SpeakerTurnMUS)
	sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ = ord.NewSliceSer[string](ord.String)
)

var FingerprintMUS = fingerprintMUS{}

type fingerprintMUS struct{}

func (s fingerprintMUS) Marshal(v Fingerprint, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s fingerprintMUS) Unmarshal(bs []byte) (v Fingerprint, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Fingerprint(tmp)
	return
}

func (s fingerprintMUS) Size(v Fingerprint) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s fingerprintMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var SpeakerTurnMUS = speakerTurnMUS{}

type speakerTurnMUS struct{}

func (s speakerTurnMUS) Marshal(v SpeakerTurn, bs []byte) (n int) {
	n = ord.String.Marshal(v.Speaker, bs)
	n += ord.String.Marshal(v.Text, bs[n:])
	return n + varint.Float64.Marshal(v.Start, bs[n:])
}

func (s speakerTurnMUS) Unmarshal(bs []byte) (v SpeakerTurn, n int, err error) {
	v.Speaker, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Start, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s speakerTurnMUS) Size(v SpeakerTurn) (size int) {
	size = ord.String.Size(v.Speaker)
	size += ord.String.Size(v.Text)
	return size + varint.Float64.Size(v.Start)
}

func (s speakerTurnMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var SentimentMUS = sentimentMUS{}

type sentimentMUS struct{}

func (s sentimentMUS) Marshal(v Sentiment, bs []byte) (n int) {
	n = varint.Int.Marshal(v.Positive, bs)
	n += varint.Int.Marshal(v.Negative, bs[n:])
	return n + varint.Int.Marshal(v.Neutral, bs[n:])
}

func (s sentimentMUS) Unmarshal(bs []byte) (v Sentiment, n int, err error) {
	v.Positive, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Negative, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Neutral, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s sentimentMUS) Size(v Sentiment) (size int) {
	size = varint.Int.Size(v.Positive)
	size += varint.Int.Size(v.Negative)
	return size + varint.Int.Size(v.Neutral)
}

func (s sentimentMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

var InsightsMUS = insightsMUS{}

type insightsMUS struct{}

func (s insightsMUS) Marshal(v Insights, bs []byte) (n int) {
	n = ord.String.Marshal(v.Summary, bs)
	n += sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Marshal(v.Tags, bs[n:])
	n += SentimentMUS.Marshal(v.Sentiment, bs[n:])
	n += varint.Int.Marshal(v.SatisfactionScore, bs[n:])
	n += sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Marshal(v.KeyPoints, bs[n:])
	n += ord.String.Marshal(v.CallerIntent, bs[n:])
	n += ord.String.Marshal(v.RecommendedAction, bs[n:])
	return n + varint.Float64.Marshal(v.Confidence, bs[n:])
}

func (s insightsMUS) Unmarshal(bs []byte) (v Insights, n int, err error) {
	v.Summary, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Tags, n1, err = sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Sentiment, n1, err = SentimentMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SatisfactionScore, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.KeyPoints, n1, err = sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CallerIntent, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RecommendedAction, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Confidence, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s insightsMUS) Size(v Insights) (size int) {
	size = ord.String.Size(v.Summary)
	size += sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Size(v.Tags)
	size += SentimentMUS.Size(v.Sentiment)
	size += varint.Int.Size(v.SatisfactionScore)
	size += sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Size(v.KeyPoints)
	size += ord.String.Size(v.CallerIntent)
	size += ord.String.Size(v.RecommendedAction)
	return size + varint.Float64.Size(v.Confidence)
}

func (s insightsMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = SentimentMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var CallRecordMUS = callRecordMUS{}

type callRecordMUS struct{}

func (s callRecordMUS) Marshal(v CallRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Filename, bs[n:])
	n += varint.Int.Marshal(v.DurationSeconds, bs[n:])
	n += ord.String.Marshal(v.Transcription, bs[n:])
	n += sliceUΔJoI6yTIFf6SSTBPD5gqQΞΞ.Marshal(v.Transcript, bs[n:])
	n += sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Marshal(v.Speakers, bs[n:])
	n += ptr5jbvl0QΣΔ7uHn2IFqPbXkgΞΞ.Marshal(v.Insights, bs[n:])
	n += FingerprintMUS.Marshal(v.Fingerprint, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.UploadedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s callRecordMUS) Unmarshal(bs []byte) (v CallRecord, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Filename, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DurationSeconds, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Transcription, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Transcript, n1, err = sliceUΔJoI6yTIFf6SSTBPD5gqQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Speakers, n1, err = sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Insights, n1, err = ptr5jbvl0QΣΔ7uHn2IFqPbXkgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Fingerprint, n1, err = FingerprintMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UploadedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s callRecordMUS) Size(v CallRecord) (size int) {
	size = ord.String.Size(v.Id)
	size += ord.String.Size(v.Filename)
	size += varint.Int.Size(v.DurationSeconds)
	size += ord.String.Size(v.Transcription)
	size += sliceUΔJoI6yTIFf6SSTBPD5gqQΞΞ.Size(v.Transcript)
	size += sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Size(v.Speakers)
	size += ptr5jbvl0QΣΔ7uHn2IFqPbXkgΞΞ.Size(v.Insights)
	size += FingerprintMUS.Size(v.Fingerprint)
	size += raw.TimeUnixMicro.Size(v.UploadedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s callRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceUΔJoI6yTIFf6SSTBPD5gqQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceb3ux8nΣah4SZvZhoOgQZoAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptr5jbvl0QΣΔ7uHn2IFqPbXkgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = FingerprintMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
