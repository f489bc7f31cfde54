package s3

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/relloyd/mtgpipe/helper"
)

// AwsS3Object identifies one object in a bucket.
type AwsS3Object struct {
	Bucket string `errorTxt:"bucket name" mandatory:"yes"`
	Key    string `errorTxt:"object key" mandatory:"yes"`
	Region string `errorTxt:"bucket region" mandatory:"yes"`
}

func (o AwsS3Object) String() string {
	return fmt.Sprintf("s3://%v/%v", o.Bucket, o.Key)
}

// ParseDSN expects objectUrl to be of the form [s3://]<bucket>/<key>
// It returns an AwsS3Object populated with the components of objectUrl and the supplied region.
// If there is a parsing error it returns an error.
func ParseDSN(objectUrl string, region string) (retval AwsS3Object, err error) {
	expectedScheme := "s3"
	s3url, err := url.Parse(objectUrl)
	if err != nil {
		return retval, fmt.Errorf("error parsing S3 URL: %v", err)
	}
	if s3url.Scheme != "" && s3url.Scheme != expectedScheme {
		return retval, fmt.Errorf("expected S3 URL scheme %q but got %q", expectedScheme, s3url.Scheme)
	}
	retval.Bucket = s3url.Host
	retval.Key = strings.Trim(s3url.Path, "/")
	retval.Region = region
	if err = helper.ValidateStructIsPopulated(retval); err != nil {
		return retval, fmt.Errorf("error parsing S3 URL %q: %v", objectUrl, err)
	}
	return
}
