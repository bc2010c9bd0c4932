package keywords

// Built-in vocabularies. Callers may override the keyword and menu sets
// per request; these defaults cover the common Korean venue domain.

// VenueKeywords are category words used both for strong-name line
// detection and for category matching against resolver records.
var VenueKeywords = []string{
	"카페", "커피", "베이커리", "빵집", "식당", "음식점", "레스토랑",
	"디저트", "브런치", "주점", "펍", "포차", "치킨", "피자", "분식",
	"한식", "중식", "일식", "양식", "고기", "회", "초밥", "국밥",
	"맛집", "술집", "바",
}

// MenuKeywords are dish and drink names used for menu-overlap scoring.
var MenuKeywords = []string{
	"아메리카노", "라떼", "에스프레소", "타르트", "케이크", "크로플",
	"크루아상", "소금빵", "베이글", "마카롱", "빙수", "샌드위치",
	"파스타", "스테이크", "리조또", "수제버거", "김치찌개", "된장찌개",
	"떡볶이", "김밥", "돈까스", "냉면", "칼국수", "삼겹살",
}

// businessSuffixes end a run of text that names a business.
const businessSuffixes = `타르트|카페|베이커리|빵집|식당|레스토랑|디저트|브런치|케이크|커피|분식|치킨|피자`

// landmarkSuffixes end a run of text that names a landmark.
const landmarkSuffixes = `역|대학교|대학|회관|공원|타워|센터|병원|시장|터미널|호텔|빌딩|프라자|플라자|몰|광장|하우스|맨션`

// branchSuffixes are trailing store-branch markers stripped from
// hashtag-derived names to recover the bare brand. The generic form is
// a two-syllable area name plus 점 (강남점, 홍대점).
const branchSuffixes = `본점|지점|분점|매장|[가-힣]{2}점`
