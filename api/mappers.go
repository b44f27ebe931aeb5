package api

import "stockfolio/models"

func ToStockResponse(stock models.Stock) StockResponse {
	comments := make([]CommentResponse, 0, len(stock.Comments))
	for _, comment := range stock.Comments {
		comments = append(comments, ToCommentResponse(comment))
	}

	return StockResponse{
		ID:          stock.ID,
		Symbol:      stock.Symbol,
		CompanyName: stock.CompanyName,
		Purchase:    stock.Purchase,
		LastDiv:     stock.LastDiv,
		Industry:    stock.Industry,
		MarketCap:   stock.MarketCap,
		Comments:    comments,
	}
}

func ToStockResponses(stocks []models.Stock) []StockResponse {
	responses := make([]StockResponse, 0, len(stocks))
	for _, stock := range stocks {
		responses = append(responses, ToStockResponse(stock))
	}

	return responses
}

func ToCommentResponse(comment models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Title:     comment.Title,
		Content:   comment.Content,
		CreatedOn: comment.CreatedAt,
		CreatedBy: comment.User.Username,
		StockID:   comment.StockID,
	}
}

func ToCommentResponses(comments []models.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, ToCommentResponse(comment))
	}

	return responses
}

func (r CreateStockRequest) Stock() models.Stock {
	return models.Stock{
		Symbol:      r.Symbol,
		CompanyName: r.CompanyName,
		Purchase:    r.Purchase,
		LastDiv:     r.LastDiv,
		Industry:    r.Industry,
		MarketCap:   r.MarketCap,
	}
}

func (r UpdateStockRequest) Stock() models.Stock {
	return models.Stock{
		Symbol:      r.Symbol,
		CompanyName: r.CompanyName,
		Purchase:    r.Purchase,
		LastDiv:     r.LastDiv,
		Industry:    r.Industry,
		MarketCap:   r.MarketCap,
	}
}
